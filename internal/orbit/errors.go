package orbit

import (
	"errors"
	"fmt"
)

// ErrUnknownStepper is returned by NewStepper for an unrecognized name.
var ErrUnknownStepper = errors.New("orbit: unknown stepper")

// EnergyViolation records an energy-conservation guard trip. It is a report,
// not a Go error; callers distinguish an aborted run from a completed one
// through Result.Status.
type EnergyViolation struct {
	Einit  float64 // energy at t=0
	Time   float64 // time of the violating step
	Energy float64 // energy at the violating step
}

// Delta returns Einit - Energy, the signed deviation at the violation.
func (v *EnergyViolation) Delta() float64 {
	return v.Einit - v.Energy
}

func (v *EnergyViolation) String() string {
	return fmt.Sprintf("Energy conservation violated:\n  E(0) = %f,  E(%f) = %f,  Delta E = %f",
		v.Einit, v.Time, v.Energy, v.Delta())
}
