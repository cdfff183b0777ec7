package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// PlotTrajectory renders the trajectory's projection onto a plane as a
// braille plot with axis labels and the launch-velocity title. w and h are
// the canvas size in terminal cells. vy is passed explicitly because
// trajectories loaded from disk carry positions only.
func PlotTrajectory(traj orbit.Trajectory, plane Plane, w, h int, vy float64) string {
	if len(traj) == 0 {
		return "(empty trajectory)\n"
	}

	xMin, xMax, yMin, yMax := bounds(traj, plane)

	canvas := NewCanvas(w, h)
	cw, ch := w*2, h*4

	px := func(x float64) int { return int(float64(cw-1) * (x - xMin) / (xMax - xMin)) }
	py := func(y float64) int { return ch - 1 - int(float64(ch-1)*(y-yMin)/(yMax-yMin)) }

	x0, y0 := plane.Project(traj[0].Pos)
	prevX, prevY := px(x0), py(y0)
	for _, s := range traj[1:] {
		x, y := plane.Project(s.Pos)
		cx, cy := px(x), py(y)
		canvas.DrawLine(prevX, prevY, cx, cy)
		prevX, prevY = cx, cy
	}

	xl, yl := plane.Labels()
	var b strings.Builder
	fmt.Fprintf(&b, "Initial y velocity = %g\n", vy)
	fmt.Fprintf(&b, "%s: [%.3f, %.3f]  %s: [%.3f, %.3f]\n", xl, xMin, xMax, yl, yMin, yMax)
	b.WriteString(canvas.String())
	return b.String()
}

// bounds returns the projected extent padded by 5% on each side so the orbit
// never touches the frame; degenerate extents get a unit range.
func bounds(traj orbit.Trajectory, plane Plane) (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = plane.Project(traj[0].Pos)
	xMax, yMax = xMin, yMin
	for _, s := range traj {
		x, y := plane.Project(s.Pos)
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}

	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}
	xMin -= xRange * 0.05
	xMax += xRange * 0.05
	yMin -= yRange * 0.05
	yMax += yRange * 0.05
	return
}
