package metrics

import (
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// Default returns the factory set every run carries: one fresh metric
// instance per trial, so trials never share observer state.
func Default() []sim.MetricFactory {
	return []sim.MetricFactory{
		func() sim.Metric { return NewVolatility() },
		func() sim.Metric { return NewDrawdown() },
		func() sim.Metric { return NewConcession() },
	}
}
