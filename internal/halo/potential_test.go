package halo

import (
	"math"
	"testing"
)

func TestNewLogPotential_Validation(t *testing.T) {
	tests := []struct {
		name     string
		rc, b, c float64
		wantErr  bool
	}{
		{"defaults", 0.2, 0.9, 0.8, false},
		{"spherical", 0.2, 1.0, 1.0, false},
		{"zero rc", 0.0, 0.9, 0.8, true},
		{"negative rc", -0.2, 0.9, 0.8, true},
		{"zero b", 0.2, 0.0, 0.8, true},
		{"zero c", 0.2, 0.9, 0.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogPotential(tt.rc, tt.b, tt.c)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLogPotential(%g,%g,%g) error = %v, wantErr %v",
					tt.rc, tt.b, tt.c, err, tt.wantErr)
			}
		})
	}
}

func TestLogPotential_Mu2Positive(t *testing.T) {
	p, err := NewLogPotential(0.2, 0.9, 0.8)
	if err != nil {
		t.Fatal(err)
	}

	positions := []Vec3{
		{},
		{1, 0, 0},
		{-3, 2, -1},
		{1e-8, 1e-8, 1e-8},
		{100, -50, 25},
	}

	for _, pos := range positions {
		mu2 := p.Mu2(pos)
		if mu2 <= 0 {
			t.Errorf("Mu2(%v) = %v, want > 0", pos, mu2)
		}
		phi := p.Potential(pos)
		if math.IsNaN(phi) || math.IsInf(phi, 0) {
			t.Errorf("Potential(%v) = %v, want finite", pos, phi)
		}
	}
}

func TestLogPotential_Acceleration(t *testing.T) {
	p, err := NewLogPotential(0.2, 0.9, 0.8)
	if err != nil {
		t.Fatal(err)
	}

	// mu2 = 0.04 + 1 = 1.04 on the x-axis, so a = (-1/1.04, 0, 0).
	acc := p.Acceleration(Vec3{X: 1})
	want := -1.0 / 1.04
	if math.Abs(acc.X-want) > 1e-12 || acc.Y != 0 || acc.Z != 0 {
		t.Errorf("Acceleration(1,0,0) = %v, want (%v, 0, 0)", acc, want)
	}

	// Acceleration always points inward along each axis.
	acc = p.Acceleration(Vec3{0.5, -0.5, 0.5})
	if acc.X >= 0 || acc.Y <= 0 || acc.Z >= 0 {
		t.Errorf("acceleration not restoring: %v", acc)
	}
}

func TestLogPotential_AccelerationMatchesGradient(t *testing.T) {
	p, err := NewLogPotential(0.2, 0.9, 0.8)
	if err != nil {
		t.Fatal(err)
	}

	pos := Vec3{0.7, -0.3, 0.4}
	h := 1e-6
	acc := p.Acceleration(pos)

	num := Vec3{
		X: -(p.Potential(Vec3{pos.X + h, pos.Y, pos.Z}) - p.Potential(Vec3{pos.X - h, pos.Y, pos.Z})) / (2 * h),
		Y: -(p.Potential(Vec3{pos.X, pos.Y + h, pos.Z}) - p.Potential(Vec3{pos.X, pos.Y - h, pos.Z})) / (2 * h),
		Z: -(p.Potential(Vec3{pos.X, pos.Y, pos.Z + h}) - p.Potential(Vec3{pos.X, pos.Y, pos.Z - h})) / (2 * h),
	}

	if acc.Sub(num).Norm() > 1e-6 {
		t.Errorf("analytic acceleration %v disagrees with -grad Phi %v", acc, num)
	}
}

func TestLogPotential_ReferenceValue(t *testing.T) {
	p, err := NewLogPotential(0.2, 0.9, 0.8)
	if err != nil {
		t.Fatal(err)
	}

	// Phi = 0.5*ln(1.04) at the reference launch point; with the 0.08
	// kinetic term that puts the launch energy near 0.09962.
	got := p.Potential(Vec3{X: 1})
	want := 0.5 * math.Log(1.04)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Potential = %.10f, want %.10f", got, want)
	}
	if math.Abs(0.08+want-0.09962) > 1e-5 {
		t.Errorf("reference launch energy drifted: %.5f", 0.08+want)
	}
}

func TestLogPotential_SetParam(t *testing.T) {
	p, err := NewLogPotential(0.2, 0.9, 0.8)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.SetParam("Rc", 0.5); err != nil {
		t.Errorf("SetParam(Rc) failed: %v", err)
	}
	if got := p.GetParams()["Rc"]; got != 0.5 {
		t.Errorf("Rc = %v after SetParam, want 0.5", got)
	}
	if err := p.SetParam("Rc", -1); err == nil {
		t.Error("expected error for negative Rc")
	}
	if err := p.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
