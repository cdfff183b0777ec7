package orbit

import (
	"context"
	"sync"
)

// Ensemble launches one independent run per initial y-velocity. Runs share
// the read-only field; each integration itself stays strictly sequential.
type Ensemble struct {
	field   Field
	stepper Stepper
	vys     []float64
}

func NewEnsemble(field Field, stepper Stepper, vys []float64) *Ensemble {
	return &Ensemble{field: field, stepper: stepper, vys: vys}
}

// Run integrates the base config once per y-velocity, concurrently, and
// returns the results in vy order.
func (e *Ensemble) Run(ctx context.Context, base Config) ([]*Result, error) {
	results := make([]*Result, len(e.vys))
	errs := make([]error, len(e.vys))

	var wg sync.WaitGroup
	for i, vy := range e.vys {
		wg.Add(1)
		go func(idx int, vy float64) {
			defer wg.Done()

			cfg := base
			cfg.Vel.Y = vy

			sim := New(e.field, e.stepper)
			sim.AddMetric(NewEnergyDrift(e.field))
			sim.AddMetric(NewMaxRadius())

			results[idx], errs[idx] = sim.Run(ctx, cfg)
		}(i, vy)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
