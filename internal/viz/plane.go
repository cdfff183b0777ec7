package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/halo"
)

// Plane selects which two of the three coordinates a projection keeps.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

// ParsePlane recognizes the names XY, YZ and XZ, case-insensitively.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToUpper(s) {
	case "XY":
		return PlaneXY, nil
	case "YZ":
		return PlaneYZ, nil
	case "XZ":
		return PlaneXZ, nil
	default:
		return PlaneXY, fmt.Errorf("viz: unknown plane %q (want XY, YZ or XZ)", s)
	}
}

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return fmt.Sprintf("plane(%d)", int(p))
	}
}

// Next cycles XY -> YZ -> XZ -> XY.
func (p Plane) Next() Plane {
	return (p + 1) % 3
}

// Project returns the two kept coordinates of pos, in axis order.
func (p Plane) Project(pos halo.Vec3) (float64, float64) {
	switch p {
	case PlaneYZ:
		return pos.Y, pos.Z
	case PlaneXZ:
		return pos.X, pos.Z
	default:
		return pos.X, pos.Y
	}
}

// Labels returns the axis names of the projection.
func (p Plane) Labels() (string, string) {
	name := p.String()
	return name[:1], name[1:]
}
