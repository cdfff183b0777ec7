package halo

import (
	"fmt"
	"math"
)

// LogPotential is a fixed triaxial logarithmic halo. The shape parameters
// are set at construction and read-only during an integration run; SetParam
// exists for the live view's interactive tuning keys.
type LogPotential struct {
	rc float64 // core radius, > 0
	b  float64 // y:x axis ratio
	c  float64 // z:x axis ratio
}

// NewLogPotential builds the potential. Rc must be strictly positive so that
// mu2 > 0 everywhere and the logarithm is always defined.
func NewLogPotential(rc, b, c float64) (*LogPotential, error) {
	if rc <= 0 {
		return nil, fmt.Errorf("halo: core radius must be positive, got %g", rc)
	}
	if b == 0 || c == 0 {
		return nil, fmt.Errorf("halo: axis ratios must be nonzero, got b=%g c=%g", b, c)
	}
	return &LogPotential{rc: rc, b: b, c: c}, nil
}

// Mu2 returns Rc^2 + x^2 + (y/b)^2 + (z/c)^2, the squared effective radius.
func (p *LogPotential) Mu2(pos Vec3) float64 {
	yb := pos.Y / p.b
	zc := pos.Z / p.c
	return p.rc*p.rc + pos.X*pos.X + yb*yb + zc*zc
}

// Potential returns the scalar potential 0.5*ln(mu2) at pos.
func (p *LogPotential) Potential(pos Vec3) float64 {
	return 0.5 * math.Log(p.Mu2(pos))
}

// Acceleration returns -grad Phi at pos: -(x, y/b^2, z/c^2)/mu2.
func (p *LogPotential) Acceleration(pos Vec3) Vec3 {
	mu2 := p.Mu2(pos)
	return Vec3{
		X: -pos.X / mu2,
		Y: -pos.Y / (p.b * p.b) / mu2,
		Z: -pos.Z / (p.c * p.c) / mu2,
	}
}

// GetParams exposes the shape parameters for the live view's tuning pane.
func (p *LogPotential) GetParams() map[string]float64 {
	return map[string]float64{
		"Rc": p.rc,
		"b":  p.b,
		"c":  p.c,
	}
}

func (p *LogPotential) SetParam(name string, value float64) error {
	switch name {
	case "Rc":
		if value <= 0 {
			return fmt.Errorf("halo: core radius must be positive, got %g", value)
		}
		p.rc = value
	case "b":
		if value == 0 {
			return fmt.Errorf("halo: axis ratio b must be nonzero")
		}
		p.b = value
	case "c":
		if value == 0 {
			return fmt.Errorf("halo: axis ratio c must be nonzero")
		}
		p.c = value
	default:
		return fmt.Errorf("halo: unknown parameter %q", name)
	}
	return nil
}
