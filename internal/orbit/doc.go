// Package orbit integrates the trajectory of a test particle in a fixed
// gravitational field with a fixed-step symplectic scheme.
//
// The driver owns the simulation loop: it advances the phase-space state one
// step at a time, records one trajectory sample per accepted step, and
// enforces an energy-conservation guard that halts the run early when the
// specific energy drifts from its initial value by more than the configured
// tolerance. The guard is a physical-sanity check, not a correctness
// guarantee: a tolerance small relative to the scheme's dt^2 error growth can
// abort perfectly valid runs.
package orbit
