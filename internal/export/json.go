package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/storage"
)

// RunData is the JSON export shape of one stored run: the metadata block and
// the flattened sample columns.
type RunData struct {
	Meta  storage.RunMetadata `json:"meta"`
	Times []float64           `json:"times"`
	X     []float64           `json:"x"`
	Y     []float64           `json:"y"`
	Z     []float64           `json:"z"`
}

// WriteJSON encodes a run to w with indentation.
func WriteJSON(w io.Writer, meta *storage.RunMetadata, traj orbit.Trajectory) error {
	data := RunData{
		Meta:  *meta,
		Times: make([]float64, len(traj)),
		X:     make([]float64, len(traj)),
		Y:     make([]float64, len(traj)),
		Z:     make([]float64, len(traj)),
	}
	for i, s := range traj {
		data.Times[i] = s.T
		data.X[i] = s.Pos.X
		data.Y[i] = s.Pos.Y
		data.Z[i] = s.Pos.Z
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
