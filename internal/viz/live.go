package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitlab/internal/halo"
	"github.com/san-kum/orbitlab/internal/orbit"
)

const (
	liveWidth       = 72
	liveHeight      = 22
	stepsPerFrame   = 5
	trailCapacity   = 4000
	historyCapacity = 400
)

type TickMsg time.Time

// Model is the live view: it steps the integrator in real time and draws the
// orbit trail on the selected plane next to an energy chart.
type Model struct {
	field   *halo.LogPotential
	stepper orbit.Stepper

	state   orbit.PhaseState
	initial orbit.PhaseState
	t       float64
	dt      float64
	detol   float64
	einit   float64

	plane         Plane
	canvas        *Canvas
	trail         []halo.Vec3
	energyHistory []float64

	tuneKeys []string
	tuneIdx  int

	running  bool
	violated bool
}

func NewModel(field *halo.LogPotential, stepper orbit.Stepper, cfg orbit.Config, plane Plane) Model {
	initial := orbit.PhaseState{Pos: cfg.Pos, Vel: cfg.Vel}
	return Model{
		field:         field,
		stepper:       stepper,
		state:         initial,
		initial:       initial,
		dt:            cfg.DTime,
		detol:         cfg.DEtol,
		einit:         orbit.Energy(field, initial),
		plane:         plane,
		canvas:        NewCanvas(liveWidth, liveHeight),
		trail:         []halo.Vec3{initial.Pos},
		energyHistory: make([]float64, 0, historyCapacity),
		tuneKeys:      []string{"Rc", "b", "c"},
		running:       true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "p":
			m.plane = m.plane.Next()
		case "tab":
			m.tuneIdx = (m.tuneIdx + 1) % len(m.tuneKeys)
		case "+", "=":
			m.tune(0.05)
		case "-", "_":
			m.tune(-0.05)
		}
	case TickMsg:
		if m.running && !m.violated {
			for i := 0; i < stepsPerFrame; i++ {
				m.step()
				if m.violated {
					break
				}
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.state = m.stepper.Step(m.field, m.state, m.dt)
	m.t += m.dt

	energy := orbit.Energy(m.field, m.state)
	if math.Abs(m.einit-energy) > m.detol {
		m.violated = true
		m.running = false
	}

	m.energyHistory = append(m.energyHistory, energy)
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}

	m.trail = append(m.trail, m.state.Pos)
	if len(m.trail) > trailCapacity {
		m.trail = m.trail[1:]
	}
}

// tune nudges the selected shape parameter. Changing the halo invalidates
// the energy baseline, so einit is rebased at the current state and the
// history cleared.
func (m *Model) tune(delta float64) {
	name := m.tuneKeys[m.tuneIdx]
	value := m.field.GetParams()[name] + delta
	if err := m.field.SetParam(name, value); err != nil {
		return
	}
	m.einit = orbit.Energy(m.field, m.state)
	m.energyHistory = m.energyHistory[:0]
	m.violated = false
}

func (m *Model) reset() {
	m.state = m.initial
	m.t = 0
	m.einit = orbit.Energy(m.field, m.initial)
	m.violated = false
	m.running = true
	m.trail = append(m.trail[:0], m.initial.Pos)
	m.energyHistory = m.energyHistory[:0]
}

func (m Model) View() string {
	m.drawTrail()
	canvasView := canvasStyle.Render(m.canvas.String())

	status := "RUNNING"
	if m.violated {
		status = alertStyle.Render("ENERGY VIOLATED")
	} else if !m.running {
		status = "PAUSED"
	}

	energy := m.einit
	if len(m.energyHistory) > 0 {
		energy = m.energyHistory[len(m.energyHistory)-1]
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBIT / LOGARITHMIC HALO") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("energy"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Plane") + valueStyle.Render(m.plane.String()) + "\n")
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", m.t)) + "\n")
	s.WriteString(labelStyle.Render("E(t)") + valueStyle.Render(fmt.Sprintf("%.6f", energy)) + "\n")
	s.WriteString(labelStyle.Render("|dE|") + valueStyle.Render(fmt.Sprintf("%.2e", math.Abs(energy-m.einit))) + "\n")

	s.WriteString("\nHALO\n")
	params := m.field.GetParams()
	for i, k := range m.tuneKeys {
		marker := "  "
		if i == m.tuneIdx {
			marker = "> "
		}
		s.WriteString(marker + labelStyle.Render(k) + valueStyle.Render(fmt.Sprintf("%.2f", params[k])) + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────\nSP:Pause R:Reset\nP:Plane  Q:Quit\nTAB:Param +/-:Tune"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

func (m *Model) drawTrail() {
	m.canvas.Clear()
	if len(m.trail) < 2 {
		return
	}

	xMin, yMin := m.plane.Project(m.trail[0])
	xMax, yMax := xMin, yMin
	for _, pos := range m.trail {
		x, y := m.plane.Project(pos)
		xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
		yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
	}
	xRange, yRange := xMax-xMin, yMax-yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	prevSet := false
	var prevX, prevY int
	for _, pos := range m.trail {
		x, y := m.plane.Project(pos)
		cx := int(float64(cw-1) * (x - xMin) / xRange)
		cy := ch - 1 - int(float64(ch-1)*(y-yMin)/yRange)
		if prevSet {
			m.canvas.DrawLine(prevX, prevY, cx, cy)
		}
		prevX, prevY, prevSet = cx, cy, true
	}

	// mark the particle
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.canvas.Set(prevX+dx, prevY+dy)
		}
	}
}
