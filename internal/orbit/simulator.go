package orbit

import (
	"context"
	"math"
)

// Simulator drives one integration run: stepper and energy monitor in a
// strictly sequential loop over step indices.
type Simulator struct {
	field     Field
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(field Field, stepper Stepper) *Simulator {
	return &Simulator{
		field:   field,
		stepper: stepper,
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates cfg.NStep steps from the configured initial state. The
// trajectory always starts with the initial sample at t=0; each accepted step
// appends exactly one sample, so len(trajectory) == 1 + steps taken. When the
// energy guard trips the violating sample is dropped, the loop stops, and the
// result reports the violating step's time and energy.
//
// Cancelling ctx returns the partial result together with ctx.Err().
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	state := PhaseState{Pos: cfg.Pos, Vel: cfg.Vel}
	einit := Energy(s.field, state)

	result := &Result{
		Trajectory: make(Trajectory, 0, cfg.NStep+1),
		Status:     Completed,
		Einit:      einit,
		Efinal:     einit,
		Metrics:    make(map[string]float64),
	}

	first := Sample{PhaseState: state, T: 0}
	result.Trajectory = append(result.Trajectory, first)
	s.observe(first)

	for n := 1; n <= cfg.NStep; n++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		state = s.stepper.Step(s.field, state, cfg.DTime)
		tnow := float64(n) * cfg.DTime
		enow := Energy(s.field, state)

		result.FinalTime = tnow
		result.Efinal = enow

		if math.Abs(einit-enow) > cfg.DEtol {
			result.Status = Aborted
			result.Violation = &EnergyViolation{Einit: einit, Time: tnow, Energy: enow}
			break
		}

		sample := Sample{PhaseState: state, T: tnow}
		result.Trajectory = append(result.Trajectory, sample)
		result.StepsTaken++
		s.observe(sample)
	}

	s.collect(result)
	return result, nil
}

func (s *Simulator) observe(sample Sample) {
	for _, m := range s.metrics {
		m.Observe(sample)
	}
	for _, o := range s.observers {
		o.OnSample(sample)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
