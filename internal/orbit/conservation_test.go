package orbit_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitlab/internal/halo"
	"github.com/san-kum/orbitlab/internal/orbit"
)

var _ = Describe("Simulator", func() {
	var (
		field *halo.LogPotential
		sim   *orbit.Simulator
	)

	BeforeEach(func() {
		var err error
		field, err = halo.NewLogPotential(0.2, 0.9, 0.8)
		Expect(err).NotTo(HaveOccurred())
		sim = orbit.New(field, orbit.NewLeapfrog())
	})

	Describe("the reference run", func() {
		It("conserves energy within tolerance over the full 25000 steps", func() {
			cfg := orbit.DefaultConfig()

			result, err := sim.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(orbit.Completed))
			Expect(result.Trajectory).To(HaveLen(cfg.NStep + 1))

			Expect(result.Einit).To(BeNumerically("~", 0.08+0.5*math.Log(1.04), 1e-12))
			Expect(math.Abs(result.Efinal - result.Einit)).To(BeNumerically("<=", cfg.DEtol))

			for _, s := range result.Trajectory {
				Expect(math.Abs(orbit.Energy(field, s.PhaseState) - result.Einit)).
					To(BeNumerically("<=", cfg.DEtol))
			}
		})

		It("is deterministic across repeated runs", func() {
			cfg := orbit.DefaultConfig()
			cfg.NStep = 2000

			a, err := sim.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := orbit.New(field, orbit.NewLeapfrog()).Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(b.Trajectory).To(HaveLen(len(a.Trajectory)))
			for i := range a.Trajectory {
				Expect(b.Trajectory[i]).To(Equal(a.Trajectory[i]))
			}
		})
	})

	Describe("the energy guard", func() {
		It("aborts at the first step when the tolerance is zero", func() {
			// Any finite-step scheme has nonzero local error, so a zero
			// tolerance trips immediately.
			cfg := orbit.DefaultConfig()
			cfg.DEtol = 0

			result, err := sim.Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(orbit.Aborted))
			Expect(result.Trajectory).To(HaveLen(1))
			Expect(result.StepsTaken).To(BeZero())
			Expect(result.Violation).NotTo(BeNil())
			Expect(result.Violation.Time).To(Equal(cfg.DTime))
		})
	})
})
