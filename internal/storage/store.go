package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/halo"
	"github.com/san-kum/orbitlab/internal/orbit"
)

// DefaultBaseDir is the fixed output directory runs are persisted under.
const DefaultBaseDir = "RunOrbit"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunID encodes the initial y-velocity the way the output files are named:
// "vy_" plus the value with '.' replaced by ',' so it is filesystem safe.
func RunID(vy float64) string {
	return "vy_" + strings.ReplaceAll(strconv.FormatFloat(vy, 'g', -1, 64), ".", ",")
}

func (s *Store) RunDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Pos       halo.Vec3          `json:"pos"`
	Vel       halo.Vec3          `json:"vel"`
	NStep     int                `json:"nstep"`
	DTime     float64            `json:"dtime"`
	DEtol     float64            `json:"detol"`
	Rc        float64            `json:"rc"`
	B         float64            `json:"b"`
	C         float64            `json:"c"`
	Stepper   string             `json:"stepper"`
	Status    string             `json:"status"`
	Einit     float64            `json:"einit"`
	Efinal    float64            `json:"efinal"`
	FinalTime float64            `json:"final_time"`
	Samples   int                `json:"samples"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save persists one run under RunID(vy): metadata.json plus the fixed-width
// orbit.dat table. Re-running the same launch velocity overwrites the dir.
func (s *Store) Save(cfg *config.Config, result *orbit.Result) (string, error) {
	runID := RunID(cfg.Vel.Y)
	runDir := s.RunDir(runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Pos:       cfg.Pos.Vec3(),
		Vel:       cfg.Vel.Vec3(),
		NStep:     cfg.NStep,
		DTime:     cfg.DTime,
		DEtol:     cfg.DEtol,
		Rc:        cfg.Rc,
		B:         cfg.B,
		C:         cfg.C,
		Stepper:   cfg.Stepper,
		Status:    result.Status.String(),
		Einit:     result.Einit,
		Efinal:    result.Efinal,
		FinalTime: result.FinalTime,
		Samples:   len(result.Trajectory),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	datFile, err := os.Create(filepath.Join(runDir, "orbit.dat"))
	if err != nil {
		return "", err
	}
	defer datFile.Close()

	if err := WriteTrajectory(datFile, result.Trajectory); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteTrajectory writes the (x, y, z, time) table: a header row and one
// 6-decimal, 11-character field per value.
func WriteTrajectory(w io.Writer, traj orbit.Trajectory) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "#%11s %11s %11s %11s\n", "x", "y", "z", "time"); err != nil {
		return err
	}
	for _, s := range traj {
		if _, err := fmt.Fprintf(bw, " %11.6f %11.6f %11.6f %11.6f\n",
			s.Pos.X, s.Pos.Y, s.Pos.Z, s.T); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.RunDir(runID), "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads orbit.dat back into samples.
func (s *Store) LoadTrajectory(runID string) (orbit.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.RunDir(runID), "orbit.dat"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var traj orbit.Trajectory
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("storage: malformed row %q in %s/orbit.dat", line, runID)
		}
		vals := make([]float64, 4)
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q in %s/orbit.dat: %w", f, runID, err)
			}
			vals[i] = v
		}
		traj = append(traj, orbit.Sample{
			PhaseState: orbit.PhaseState{Pos: halo.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}},
			T:          vals[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return traj, nil
}
