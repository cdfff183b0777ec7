package viz

import (
	"testing"

	"github.com/san-kum/orbitlab/internal/halo"
)

func TestParsePlane(t *testing.T) {
	tests := []struct {
		in      string
		want    Plane
		wantErr bool
	}{
		{"XY", PlaneXY, false},
		{"YZ", PlaneYZ, false},
		{"XZ", PlaneXZ, false},
		{"xy", PlaneXY, false},
		{"yz", PlaneYZ, false},
		{"ZX", PlaneXY, true},
		{"", PlaneXY, true},
	}

	for _, tt := range tests {
		got, err := ParsePlane(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlane(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePlane(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlane_Project(t *testing.T) {
	pos := halo.Vec3{X: 1, Y: 2, Z: 3}

	tests := []struct {
		plane  Plane
		a, b   float64
		la, lb string
	}{
		{PlaneXY, 1, 2, "X", "Y"},
		{PlaneYZ, 2, 3, "Y", "Z"},
		{PlaneXZ, 1, 3, "X", "Z"},
	}

	for _, tt := range tests {
		a, b := tt.plane.Project(pos)
		if a != tt.a || b != tt.b {
			t.Errorf("%v.Project = (%v, %v), want (%v, %v)", tt.plane, a, b, tt.a, tt.b)
		}
		la, lb := tt.plane.Labels()
		if la != tt.la || lb != tt.lb {
			t.Errorf("%v.Labels = (%q, %q), want (%q, %q)", tt.plane, la, lb, tt.la, tt.lb)
		}
	}
}

func TestPlane_Next(t *testing.T) {
	if PlaneXY.Next() != PlaneYZ || PlaneYZ.Next() != PlaneXZ || PlaneXZ.Next() != PlaneXY {
		t.Error("plane cycling broken")
	}
}
