package analysis

import (
	"context"
	"fmt"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// SweepPoint summarizes the ensemble outcome for one competitiveness value.
type SweepPoint struct {
	Competitiveness      float64
	MeanTerminalWage     float64
	VarianceTerminalWage float64
	MeanSteps            float64
}

// CompetitivenessSweep runs an ensemble at each point of a competitiveness
// grid and records the aggregate wage statistics. All grid points share the
// base parameters (initial wage, runs, seed), so differences between points
// come from competitiveness alone.
func CompetitivenessSweep(
	ctx context.Context,
	cfg sim.Config,
	factory sim.Factory,
	base sim.Params,
	min, max float64,
	points int,
) ([]SweepPoint, error) {
	if min < 0 || max > 1 || min > max {
		return nil, fmt.Errorf("%w: competitiveness range [%g, %g]", sim.ErrInvalidParameter, min, max)
	}
	if points <= 1 {
		points = 2 // Prevent division by zero
	}
	step := (max - min) / float64(points-1)

	results := make([]SweepPoint, 0, points)
	for i := 0; i < points; i++ {
		c := min + float64(i)*step
		// Grid arithmetic can overshoot the endpoint by an ulp.
		if c > max {
			c = max
		}

		p := base
		p.Competitiveness = c

		rep, err := sim.NewEnsemble(cfg, factory).Run(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("sweep at competitiveness %g: %w", c, err)
		}

		results = append(results, SweepPoint{
			Competitiveness:      c,
			MeanTerminalWage:     rep.MeanTerminalWage,
			VarianceTerminalWage: rep.VarianceTerminalWage,
			MeanSteps:            rep.MeanSteps,
		})
	}

	return results, nil
}
