package orbit

import "fmt"

// Stepper advances one phase-space state by one fixed time increment.
type Stepper interface {
	Name() string
	Step(f Field, s PhaseState, dt float64) PhaseState
}

// Leapfrog is the kick-drift-kick scheme: second order, symplectic, time
// reversible. The position update must use the half-kicked velocity, not the
// incoming one; swapping that order degrades the scheme to first order.
type Leapfrog struct{}

func NewLeapfrog() Leapfrog { return Leapfrog{} }

func (Leapfrog) Name() string { return "leapfrog" }

func (Leapfrog) Step(f Field, s PhaseState, dt float64) PhaseState {
	velHalf := s.Vel.Add(f.Acceleration(s.Pos).Scale(0.5 * dt))
	pos := s.Pos.Add(velHalf.Scale(dt))
	vel := velHalf.Add(f.Acceleration(pos).Scale(0.5 * dt))
	return PhaseState{Pos: pos, Vel: vel}
}

// SemiEuler is the semi-implicit (symplectic) Euler scheme: full kick, then
// drift with the updated velocity. First order; kept for the compare command.
type SemiEuler struct{}

func NewSemiEuler() SemiEuler { return SemiEuler{} }

func (SemiEuler) Name() string { return "euler" }

func (SemiEuler) Step(f Field, s PhaseState, dt float64) PhaseState {
	vel := s.Vel.Add(f.Acceleration(s.Pos).Scale(dt))
	pos := s.Pos.Add(vel.Scale(dt))
	return PhaseState{Pos: pos, Vel: vel}
}

// NewStepper resolves a stepper by name.
func NewStepper(name string) (Stepper, error) {
	switch name {
	case "leapfrog":
		return NewLeapfrog(), nil
	case "euler":
		return NewSemiEuler(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStepper, name)
	}
}

// Steppers lists the recognized stepper names.
func Steppers() []string {
	return []string{"leapfrog", "euler"}
}
