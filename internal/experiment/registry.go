package experiment

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/hanbyul-kim/laborsim/internal/market"
	"github.com/hanbyul-kim/laborsim/internal/metrics"
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

type Registry struct {
	processes map[string]sim.Factory
}

func NewRegistry() *Registry {
	r := &Registry{
		processes: make(map[string]sim.Factory),
	}

	r.processes["pull"] = market.NewPullFactory()
	r.processes["negotiation"] = market.NewNegotiationFactory()

	return r
}

// Factory resolves a process by name. Tunable overrides are layered
// onto each trial's fresh instance, never onto a shared one.
func (r *Registry) Factory(name string, tunables map[string]float64) (sim.Factory, error) {
	base, ok := r.processes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sim.ErrUnknownProcess, name)
	}
	if len(tunables) == 0 {
		return base, nil
	}

	return func(p sim.Params, rng *rand.Rand) (sim.Process, error) {
		proc, err := base(p, rng)
		if err != nil {
			return nil, err
		}
		tn, ok := proc.(sim.Tunable)
		if !ok {
			return nil, fmt.Errorf("%w: process %s does not take tunables", sim.ErrInvalidParameter, name)
		}
		for k, v := range tunables {
			if err := tn.SetParam(k, v); err != nil {
				return nil, fmt.Errorf("%w: process %s: %v", sim.ErrInvalidParameter, name, err)
			}
		}
		return proc, nil
	}, nil
}

func (r *Registry) ListProcesses() []string {
	names := make([]string, 0, len(r.processes))
	for name := range r.processes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []sim.MetricFactory {
	return metrics.Default()
}
