package market

import (
	"fmt"
	"math/rand"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// Pull-process defaults. The equilibrium sits below the opening
// expectation because supply outruns demand in the reference market.
const (
	DefaultGain             = 0.25
	DefaultEquilibriumRatio = 0.8
	DefaultNoise            = 0.02
)

// PullProcess moves a wage toward the competitive equilibrium at a
// rate set by market competitiveness, plus residual noise damped by
// that same competitiveness. At competitiveness 1 the noise term is
// exactly zero, so the path is identical whatever the seed.
type PullProcess struct {
	Competitiveness  float64
	InitialWage      float64
	Gain             float64
	EquilibriumRatio float64
	Noise            float64
}

func NewPullProcess(p sim.Params) *PullProcess {
	return &PullProcess{
		Competitiveness:  p.Competitiveness,
		InitialWage:      p.InitialWage,
		Gain:             DefaultGain,
		EquilibriumRatio: DefaultEquilibriumRatio,
		Noise:            DefaultNoise,
	}
}

// NewPullFactory adapts the process to the engine, one instance per
// trial.
func NewPullFactory() sim.Factory {
	return func(p sim.Params, rng *rand.Rand) (sim.Process, error) {
		return NewPullProcess(p), nil
	}
}

func (p *PullProcess) Step(wage float64, step int, rng *rand.Rand) float64 {
	equilibrium := p.EquilibriumRatio * p.InitialWage
	pull := p.Gain * p.Competitiveness * (equilibrium - wage)
	// Draw on every step, even when competitiveness zeroes the term,
	// so the stream position always tracks the step count.
	noise := p.Noise * (1 - p.Competitiveness) * p.InitialWage * rng.NormFloat64()
	return wage + pull + noise
}

func (p *PullProcess) GetParams() map[string]float64 {
	return map[string]float64{
		"gain":              p.Gain,
		"equilibrium_ratio": p.EquilibriumRatio,
		"noise":             p.Noise,
	}
}

func (p *PullProcess) SetParam(name string, value float64) error {
	switch name {
	case "gain":
		p.Gain = value
	case "equilibrium_ratio":
		p.EquilibriumRatio = value
	case "noise":
		p.Noise = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
