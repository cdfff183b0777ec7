// Package halo implements the triaxial logarithmic halo potential: the
// scalar potential and the acceleration field it induces on a test
// particle.
//
// The model is Phi(x,y,z) = 0.5 * ln(Rc^2 + x^2 + (y/b)^2 + (z/c)^2), which
// produces a flat asymptotic rotation curve. Rc is the core radius, b and c
// are the y:x and z:x axis ratios of the equipotential surfaces.
package halo
