package sim

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Ensemble fans one parameter set out over independent Monte Carlo
// trials. Trial i seeds its own rng with Seed+i, and every trial gets
// a fresh process and metric set, so results depend only on the
// parameters and never on goroutine scheduling.
type Ensemble struct {
	cfg     Config
	factory Factory
	metrics []MetricFactory
}

func NewEnsemble(cfg Config, factory Factory) *Ensemble {
	return &Ensemble{
		cfg:     cfg,
		factory: factory,
		metrics: make([]MetricFactory, 0),
	}
}

func (e *Ensemble) AddMetric(mf MetricFactory) { e.metrics = append(e.metrics, mf) }

// Run validates p, executes p.Runs trials in parallel, and aggregates
// them into a single report. Any trial failure aborts the whole
// request; there is no partial report.
func (e *Ensemble) Run(ctx context.Context, p Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]RunResult, p.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxRuns)

	for i := 0; i < p.Runs; i++ {
		i := i
		g.Go(func() error {
			rng := rand.New(rand.NewSource(p.Seed + int64(i)))

			proc, err := e.factory(p, rng)
			if err != nil {
				return err
			}

			s := New(e.cfg)
			for _, mf := range e.metrics {
				s.AddMetric(mf())
			}

			res, err := s.Run(gctx, i, p, proc, rng)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Aggregate(results)
}
