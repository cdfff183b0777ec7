package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/viz"
)

// TrajectoryToSVG renders the trajectory's projection onto a plane as a
// single SVG polyline path. vy is the launch velocity for the caption,
// passed explicitly because trajectories loaded from disk carry positions
// only.
func TrajectoryToSVG(traj orbit.Trajectory, plane viz.Plane, width, height int, strokeColor string, vy float64) string {
	if len(traj) < 2 {
		return ""
	}

	// Bounds with 10% padding.
	minX, minY := plane.Project(traj[0].Pos)
	maxX, maxY := minX, minY
	for _, s := range traj {
		x, y := plane.Project(s.Pos)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, s := range traj {
		x, y := plane.Project(s.Pos)
		px := (x - minX) / rangeX * float64(width)
		py := float64(height) - (y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	xl, yl := plane.Labels()
	sb.WriteString(fmt.Sprintf(`"/>
<text x="%d" y="%d" fill="#888" font-family="monospace" font-size="12">%s-%s, initial vy = %g</text>
</svg>`, 8, height-8, xl, yl, vy))
	return sb.String()
}
