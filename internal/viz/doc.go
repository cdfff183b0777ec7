// Package viz renders orbit trajectories in the terminal: a braille-canvas
// projection of the orbit onto a coordinate plane, and a live view that
// steps the integrator in real time.
package viz
