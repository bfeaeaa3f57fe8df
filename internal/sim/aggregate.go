package sim

// Aggregate folds per-run results into a report. Sums follow slice
// order, so aggregating the same results again is bit-identical.
func Aggregate(results []RunResult) (*Report, error) {
	if len(results) == 0 {
		return nil, ErrEmptyResults
	}

	n := float64(len(results))
	rep := &Report{
		Runs:         results,
		Trajectories: make([]Trajectory, len(results)),
		Metrics:      make(map[string]float64),
	}

	var sumWage, sumSteps float64
	for i, r := range results {
		rep.Trajectories[i] = r.Trajectory
		sumWage += r.TerminalWage
		sumSteps += float64(r.Steps)
	}
	rep.MeanTerminalWage = sumWage / n
	rep.MeanSteps = sumSteps / n

	var sumSq float64
	for _, r := range results {
		d := r.TerminalWage - rep.MeanTerminalWage
		sumSq += d * d
	}
	rep.VarianceTerminalWage = sumSq / n

	for _, r := range results {
		for name, v := range r.Metrics {
			rep.Metrics[name] += v
		}
	}
	for name := range rep.Metrics {
		rep.Metrics[name] /= n
	}

	return rep, nil
}
