package experiment

import (
	"context"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// Config binds one simulation request to a named process and the
// generator tuning it runs under.
type Config struct {
	Process  string
	Params   sim.Params
	Sim      sim.Config
	Tunables map[string]float64
}

// Experiment is the single entry point the CLI and web layers call: it
// resolves the process, attaches the default metric set, and runs the
// ensemble.
type Experiment struct {
	cfg      Config
	registry *Registry
}

func New(cfg Config, registry *Registry) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: registry,
	}
}

func (e *Experiment) Run(ctx context.Context) (*sim.Report, error) {
	factory, err := e.registry.Factory(e.cfg.Process, e.cfg.Tunables)
	if err != nil {
		return nil, err
	}

	ens := sim.NewEnsemble(e.cfg.Sim, factory)
	for _, mf := range e.registry.DefaultMetrics() {
		ens.AddMetric(mf)
	}

	return ens.Run(ctx, e.cfg.Params)
}
