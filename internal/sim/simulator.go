package sim

import (
	"context"
	"math"
	"math/rand"
)

// Simulator advances one wage trajectory until it converges, settles,
// or hits the step limit.
type Simulator struct {
	cfg     Config
	metrics []Metric
}

func New(cfg Config) *Simulator {
	return &Simulator{
		cfg:     cfg,
		metrics: make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Run drives proc from the initial wage and records every step. The
// trajectory always opens at (0, InitialWage) and never exceeds
// StepLimit adjustment steps. Convergence means two consecutive steps
// moved less than Tolerance*InitialWage. Randomness flows only through
// proc, so the number of rng draws tracks the number of steps taken.
func (s *Simulator) Run(ctx context.Context, run int, p Params, proc Process, rng *rand.Rand) (RunResult, error) {
	res := RunResult{
		Run:        run,
		Trajectory: make(Trajectory, 0, s.cfg.StepLimit+1),
		Metrics:    make(map[string]float64, len(s.metrics)),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	wage := p.InitialWage
	res.Trajectory = append(res.Trajectory, Point{Step: 0, Wage: wage})
	for _, m := range s.metrics {
		m.Observe(wage, 0)
	}

	eps := s.cfg.Tolerance * p.InitialWage
	quiet := 0

	for step := 1; step <= s.cfg.StepLimit; step++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		next := proc.Step(wage, step, rng)
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return res, &InstabilityError{Run: run, Step: step, Wage: next}
		}
		if next < 0 {
			next = 0
		}

		delta := math.Abs(next - wage)
		wage = next
		res.Trajectory = append(res.Trajectory, Point{Step: step, Wage: wage})
		for _, m := range s.metrics {
			m.Observe(wage, step)
		}

		if delta < eps {
			quiet++
		} else {
			quiet = 0
		}
		if quiet >= 2 {
			res.Converged = true
			break
		}

		if st, ok := proc.(Settler); ok && st.Settled(wage, step) {
			res.Converged = true
			break
		}
	}

	res.TerminalWage = wage
	res.Steps = res.Trajectory.Steps()
	for _, m := range s.metrics {
		res.Metrics[m.Name()] = m.Value()
	}

	return res, nil
}
