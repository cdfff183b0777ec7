package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/orbitlab/internal/halo"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/viz"
)

// sampleTrajectory mimics a trajectory read back from orbit.dat: positions
// and times only, no velocities.
func sampleTrajectory() orbit.Trajectory {
	return orbit.Trajectory{
		{PhaseState: orbit.PhaseState{Pos: halo.Vec3{X: 1}}, T: 0},
		{PhaseState: orbit.PhaseState{Pos: halo.Vec3{X: 0.9, Y: 0.1}}, T: 0.01},
		{PhaseState: orbit.PhaseState{Pos: halo.Vec3{X: 0.7, Y: 0.2}}, T: 0.02},
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	svg := TrajectoryToSVG(sampleTrajectory(), viz.PlaneXY, 640, 480, "#00ff00", 0.4)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `<path fill="none" stroke="#00ff00"`) {
		t.Error("missing trajectory path")
	}
	if !strings.Contains(svg, "initial vy = 0.4") {
		t.Error("missing launch annotation")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated document")
	}
}

func TestTrajectoryToSVG_TooShort(t *testing.T) {
	if svg := TrajectoryToSVG(sampleTrajectory()[:1], viz.PlaneXY, 640, 480, "#fff", 0.4); svg != "" {
		t.Error("expected empty output for a single-sample trajectory")
	}
}

func TestWriteJSON(t *testing.T) {
	meta := &storage.RunMetadata{ID: "vy_0,4", Status: "completed", Samples: 3}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta, sampleTrajectory()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var out RunData
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Meta.ID != "vy_0,4" {
		t.Errorf("meta ID = %q", out.Meta.ID)
	}
	if len(out.Times) != 3 || out.X[0] != 1 || out.Times[2] != 0.02 {
		t.Errorf("columns mismatch: %+v", out)
	}
}
