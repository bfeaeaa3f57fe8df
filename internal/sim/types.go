package sim

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// MinRuns and MaxRuns bound the number of Monte Carlo trials
	// a single request may ask for.
	MinRuns = 1
	MaxRuns = 10
)

// Params are the operator-facing inputs of one simulation request.
type Params struct {
	Competitiveness float64
	InitialWage     float64
	Runs            int
	Seed            int64
}

// Validate rejects out-of-domain parameters. The trust boundary sits
// above the engine, but the engine re-checks anyway so a buggy caller
// cannot push it into undefined behavior.
func (p Params) Validate() error {
	if math.IsNaN(p.Competitiveness) || p.Competitiveness < 0 || p.Competitiveness > 1 {
		return &ParameterError{Name: "competitiveness", Value: p.Competitiveness, Reason: "must be within [0, 1]"}
	}
	if math.IsNaN(p.InitialWage) || math.IsInf(p.InitialWage, 0) || p.InitialWage <= 0 {
		return &ParameterError{Name: "initial wage", Value: p.InitialWage, Reason: "must be positive and finite"}
	}
	if p.Runs < MinRuns || p.Runs > MaxRuns {
		return &ParameterError{Name: "runs", Value: float64(p.Runs), Reason: fmt.Sprintf("must be between %d and %d", MinRuns, MaxRuns)}
	}
	return nil
}

// Config tunes the trajectory generator. Tolerance is relative: a step
// counts as quiet when |delta| < Tolerance * InitialWage.
type Config struct {
	StepLimit int
	Tolerance float64
}

func DefaultConfig() Config {
	return Config{
		StepLimit: 50,
		Tolerance: 1e-3,
	}
}

func (c Config) Validate() error {
	if c.StepLimit < 1 {
		return &ParameterError{Name: "step limit", Value: float64(c.StepLimit), Reason: "must be at least 1"}
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance <= 0 {
		return &ParameterError{Name: "tolerance", Value: c.Tolerance, Reason: "must be positive"}
	}
	return nil
}

// Point is one observation on a wage trajectory.
type Point struct {
	Step int
	Wage float64
}

// Trajectory is the full step-by-step path of one trial, starting at
// the initial wage on step 0. Treat it as read-only once returned.
type Trajectory []Point

func (tr Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(tr))
	copy(c, tr)
	return c
}

// Terminal returns the last recorded wage.
func (tr Trajectory) Terminal() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].Wage
}

// Steps counts adjustment steps, excluding the initial observation.
func (tr Trajectory) Steps() int {
	if len(tr) == 0 {
		return 0
	}
	return len(tr) - 1
}

func (tr Trajectory) IsValid() bool {
	for _, p := range tr {
		if math.IsNaN(p.Wage) || math.IsInf(p.Wage, 0) || p.Wage < 0 {
			return false
		}
	}
	return true
}

// Wages returns the wage column, for charts and exports.
func (tr Trajectory) Wages() []float64 {
	w := make([]float64, len(tr))
	for i, p := range tr {
		w[i] = p.Wage
	}
	return w
}

// Process is a discrete-time wage-adjustment rule. Step proposes the
// next wage from the current one; it must draw randomness only from
// the supplied rng so trials stay reproducible.
type Process interface {
	Step(wage float64, step int, rng *rand.Rand) float64
}

// Settler lets a process end a trajectory on its own, before the
// generic convergence rule fires.
type Settler interface {
	Settled(wage float64, step int) bool
}

// Tunable exposes process parameters for runtime adjustment.
type Tunable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Factory builds one fresh process per trial. The rng is the trial's
// own stream and may be used for randomized construction.
type Factory func(p Params, rng *rand.Rand) (Process, error)

// Metric observes every recorded wage of a trial and reduces the
// trajectory to a single value.
type Metric interface {
	Name() string
	Observe(wage float64, step int)
	Value() float64
	Reset()
}

// MetricFactory builds one fresh metric per trial.
type MetricFactory func() Metric

// RunResult is the outcome of a single trial.
type RunResult struct {
	Run          int
	TerminalWage float64
	Steps        int
	Converged    bool
	Trajectory   Trajectory
	Metrics      map[string]float64
}

// Report aggregates an ensemble of trials. VarianceTerminalWage is the
// population variance over the terminal wages. Read-only once built.
type Report struct {
	MeanTerminalWage     float64
	VarianceTerminalWage float64
	MeanSteps            float64
	Trajectories         []Trajectory
	Runs                 []RunResult
	Metrics              map[string]float64
}
