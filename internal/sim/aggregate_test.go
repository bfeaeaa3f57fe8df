package sim

import (
	"errors"
	"reflect"
	"testing"
)

func sampleResults() []RunResult {
	return []RunResult{
		{Run: 0, TerminalWage: 100, Steps: 10, Trajectory: Trajectory{{0, 120}, {1, 100}}, Metrics: map[string]float64{"volatility": 2}},
		{Run: 1, TerminalWage: 200, Steps: 20, Trajectory: Trajectory{{0, 120}, {1, 200}}, Metrics: map[string]float64{"volatility": 4}},
		{Run: 2, TerminalWage: 600, Steps: 30, Trajectory: Trajectory{{0, 120}, {1, 600}}, Metrics: map[string]float64{"volatility": 6}},
	}
}

func TestAggregateExactStatistics(t *testing.T) {
	rep, err := Aggregate(sampleResults())
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if rep.MeanTerminalWage != 300 {
		t.Errorf("expected mean 300, got %g", rep.MeanTerminalWage)
	}
	if rep.MeanSteps != 20 {
		t.Errorf("expected mean steps 20, got %g", rep.MeanSteps)
	}

	// Population variance: ((-200)^2 + (-100)^2 + 300^2) / 3.
	if want := 140000.0 / 3.0; rep.VarianceTerminalWage != want {
		t.Errorf("expected variance %g, got %g", want, rep.VarianceTerminalWage)
	}

	if rep.Metrics["volatility"] != 4 {
		t.Errorf("expected mean volatility 4, got %g", rep.Metrics["volatility"])
	}

	if len(rep.Trajectories) != 3 {
		t.Errorf("expected 3 trajectories, got %d", len(rep.Trajectories))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	results := sampleResults()

	first, err := Aggregate(results)
	if err != nil {
		t.Fatalf("first aggregate failed: %v", err)
	}
	second, err := Aggregate(results)
	if err != nil {
		t.Fatalf("second aggregate failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("aggregating identical results twice disagreed")
	}
}

func TestAggregateSingleRun(t *testing.T) {
	rep, err := Aggregate(sampleResults()[:1])
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	if rep.MeanTerminalWage != 100 {
		t.Errorf("expected mean 100, got %g", rep.MeanTerminalWage)
	}
	if rep.VarianceTerminalWage != 0 {
		t.Errorf("expected zero variance, got %g", rep.VarianceTerminalWage)
	}
}

func TestAggregateEmpty(t *testing.T) {
	rep, err := Aggregate(nil)
	if !errors.Is(err, ErrEmptyResults) {
		t.Errorf("expected ErrEmptyResults, got %v", err)
	}
	if rep != nil {
		t.Error("expected nil report")
	}
}
