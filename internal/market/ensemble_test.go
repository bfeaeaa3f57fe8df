package market_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hanbyul-kim/laborsim/internal/market"
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

var _ = Describe("pull-process ensembles", func() {
	cfg := sim.DefaultConfig()

	run := func(c float64, wage float64, runs int, seed int64) *sim.Report {
		rep, err := sim.NewEnsemble(cfg, market.NewPullFactory()).Run(context.Background(), sim.Params{
			Competitiveness: c,
			InitialWage:     wage,
			Runs:            runs,
			Seed:            seed,
		})
		Expect(err).NotTo(HaveOccurred())
		return rep
	}

	It("keeps every trajectory within bounds", func() {
		for _, c := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
			for seed := int64(1); seed <= 10; seed++ {
				rep := run(c, 3000000, 5, seed)
				for _, tr := range rep.Trajectories {
					Expect(len(tr)).To(BeNumerically(">=", 1))
					Expect(len(tr)).To(BeNumerically("<=", cfg.StepLimit+1))
					Expect(tr[0].Wage).To(Equal(3000000.0))
					Expect(tr[0].Step).To(Equal(0))
					Expect(tr.IsValid()).To(BeTrue(), "competitiveness %v seed %d", c, seed)
				}
			}
		}
	})

	It("is seed-invariant at full competitiveness", func() {
		base := run(1.0, 3000000, 5, 1)
		for _, seed := range []int64{2, 999, 31337} {
			Expect(run(1.0, 3000000, 5, seed)).To(Equal(base))
		}
	})

	It("varies across seeds below full competitiveness", func() {
		a := run(0.5, 3000000, 5, 1)
		b := run(0.5, 3000000, 5, 2)
		Expect(a.Trajectories).NotTo(Equal(b.Trajectories))
	})

	It("converges no slower as competitiveness rises", func() {
		meanSteps := func(c float64) float64 {
			total := 0.0
			for seed := int64(1); seed <= 30; seed++ {
				total += run(c, 3000000, 10, seed).MeanSteps
			}
			return total / 30
		}

		slack := meanSteps(0.2)
		tight := meanSteps(0.9)
		full := meanSteps(1.0)

		Expect(tight).To(BeNumerically("<=", slack+1))
		Expect(full).To(BeNumerically("<=", tight+1))
	})

	It("reproduces the reference scenario", func() {
		rep := run(0.5, 3000000, 3, 42)

		Expect(rep.Trajectories).To(HaveLen(3))
		Expect(rep.Runs).To(HaveLen(3))
		for _, tr := range rep.Trajectories {
			Expect(tr[0].Wage).To(Equal(3000000.0))
		}
	})

	It("reports the exact mean and population variance of its runs", func() {
		rep := run(0.3, 3000000, 5, 7)

		sum := 0.0
		for _, r := range rep.Runs {
			sum += r.TerminalWage
		}
		mean := sum / 5

		sq := 0.0
		for _, r := range rep.Runs {
			d := r.TerminalWage - mean
			sq += d * d
		}

		Expect(rep.MeanTerminalWage).To(Equal(mean))
		Expect(rep.VarianceTerminalWage).To(Equal(sq / 5))
	})
})

var _ = Describe("negotiation ensembles", func() {
	cfg := sim.DefaultConfig()

	It("settles affordable workers on their first offer", func() {
		rep, err := sim.NewEnsemble(cfg, market.NewNegotiationFactory()).Run(context.Background(), sim.Params{
			Competitiveness: 0.5,
			InitialWage:     3000000,
			Runs:            5,
			Seed:            3,
		})
		Expect(err).NotTo(HaveOccurred())

		for _, r := range rep.Runs {
			Expect(r.Converged).To(BeTrue())
			Expect(r.Steps).To(Equal(1))
			Expect(r.TerminalWage).To(BeNumerically(">", 0))
		}
	})

	It("lets priced-out workers concede and stall", func() {
		rep, err := sim.NewEnsemble(cfg, market.NewNegotiationFactory()).Run(context.Background(), sim.Params{
			Competitiveness: 0.0,
			InitialWage:     50000000,
			Runs:            5,
			Seed:            3,
		})
		Expect(err).NotTo(HaveOccurred())

		for _, r := range rep.Runs {
			Expect(r.Converged).To(BeTrue())
			Expect(r.Steps).To(Equal(market.MaxAttempts + 2))
			Expect(r.Trajectory.IsValid()).To(BeTrue())

			offers := r.Trajectory[1 : market.MaxAttempts+1]
			for i := 1; i < len(offers); i++ {
				Expect(offers[i].Wage).To(BeNumerically("<", offers[i-1].Wage))
			}
		}
	})
})
