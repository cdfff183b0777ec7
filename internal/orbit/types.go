package orbit

import (
	"fmt"

	"github.com/san-kum/orbitlab/internal/halo"
)

// Field is the fixed background the particle moves in.
type Field interface {
	Potential(pos halo.Vec3) float64
	Acceleration(pos halo.Vec3) halo.Vec3
}

// PhaseState is one point in phase space.
type PhaseState struct {
	Pos halo.Vec3
	Vel halo.Vec3
}

func (s PhaseState) IsValid() bool {
	return s.Pos.IsValid() && s.Vel.IsValid()
}

// Sample is a phase-space state tagged with its simulation time.
type Sample struct {
	PhaseState
	T float64
}

// Trajectory is the ordered, append-only sequence of samples produced by one
// run. The first sample is always the initial state at t=0; sample times
// increase by the configured time step.
type Trajectory []Sample

// Energy returns the specific energy (kinetic + potential, unit mass) of a
// state in the given field.
func Energy(f Field, s PhaseState) float64 {
	return 0.5*s.Vel.NormSq() + f.Potential(s.Pos)
}

// Config holds the immutable parameters of one integration run.
type Config struct {
	Pos   halo.Vec3
	Vel   halo.Vec3
	NStep int
	DTime float64
	DEtol float64
}

func DefaultConfig() Config {
	return Config{
		Pos:   halo.Vec3{X: 1.0},
		Vel:   halo.Vec3{Y: 0.4},
		NStep: 25000,
		DTime: 0.01,
		DEtol: 1.0e-3,
	}
}

func (c Config) Validate() error {
	if c.NStep <= 0 {
		return fmt.Errorf("orbit: nstep must be positive, got %d", c.NStep)
	}
	if c.DTime <= 0 {
		return fmt.Errorf("orbit: dtime must be positive, got %g", c.DTime)
	}
	if c.DEtol < 0 {
		return fmt.Errorf("orbit: detol must not be negative, got %g", c.DEtol)
	}
	if !c.Pos.IsValid() || !c.Vel.IsValid() {
		return fmt.Errorf("orbit: initial state must be finite")
	}
	return nil
}

// Status is the terminal state of a run.
type Status int

const (
	// Completed means the loop reached nstep without an energy violation.
	Completed Status = iota
	// Aborted means the energy guard tripped before nstep.
	Aborted
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one run. FinalTime and Efinal refer to the last
// evaluated step; on an aborted run that is the violating step, whose sample
// is not part of the trajectory.
type Result struct {
	Trajectory Trajectory
	Status     Status
	Einit      float64
	Efinal     float64
	FinalTime  float64
	StepsTaken int
	Violation  *EnergyViolation
	Metrics    map[string]float64
}

// Report renders the human-readable energy report printed after every run.
func (r *Result) Report() string {
	out := ""
	if r.Violation != nil {
		out = r.Violation.String() + "\n"
	}
	out += fmt.Sprintf("[ run completed : E(0) = %f,  E(%f) = %f ]",
		r.Einit, r.FinalTime, r.Efinal)
	return out
}
