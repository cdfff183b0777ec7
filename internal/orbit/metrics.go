package orbit

import "math"

// Metric accumulates a scalar over the samples of one run.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Observer is notified of every accepted sample.
type Observer interface {
	OnSample(s Sample)
}

// EnergyDrift tracks the maximum |E - E(0)| seen over a run.
type EnergyDrift struct {
	field   Field
	einit   float64
	max     float64
	samples int
}

func NewEnergyDrift(f Field) *EnergyDrift {
	return &EnergyDrift{field: f}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(s Sample) {
	energy := Energy(e.field, s.PhaseState)
	if e.samples == 0 {
		e.einit = energy
	}
	e.samples++
	e.max = math.Max(e.max, math.Abs(energy-e.einit))
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.einit = 0
	e.max = 0
	e.samples = 0
}

// MaxRadius tracks the largest distance from the origin, the orbit's apocenter.
type MaxRadius struct {
	max float64
}

func NewMaxRadius() *MaxRadius { return &MaxRadius{} }

func (m *MaxRadius) Name() string { return "max_radius" }

func (m *MaxRadius) Observe(s Sample) {
	m.max = math.Max(m.max, s.Pos.Norm())
}

func (m *MaxRadius) Value() float64 { return m.max }

func (m *MaxRadius) Reset() { m.max = 0 }
