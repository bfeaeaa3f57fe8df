package sim

import (
	"errors"
	"math"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		valid  bool
	}{
		{"typical", Params{Competitiveness: 0.5, InitialWage: 3000000, Runs: 3}, true},
		{"competitiveness floor", Params{Competitiveness: 0.0, InitialWage: 1000, Runs: 1}, true},
		{"competitiveness ceiling", Params{Competitiveness: 1.0, InitialWage: 1000, Runs: 1}, true},
		{"competitiveness below floor", Params{Competitiveness: -0.01, InitialWage: 1000, Runs: 1}, false},
		{"competitiveness above ceiling", Params{Competitiveness: 1.01, InitialWage: 1000, Runs: 1}, false},
		{"competitiveness NaN", Params{Competitiveness: math.NaN(), InitialWage: 1000, Runs: 1}, false},
		{"zero wage", Params{Competitiveness: 0.5, InitialWage: 0, Runs: 1}, false},
		{"negative wage", Params{Competitiveness: 0.5, InitialWage: -5, Runs: 1}, false},
		{"infinite wage", Params{Competitiveness: 0.5, InitialWage: math.Inf(1), Runs: 1}, false},
		{"NaN wage", Params{Competitiveness: 0.5, InitialWage: math.NaN(), Runs: 1}, false},
		{"runs floor", Params{Competitiveness: 0.5, InitialWage: 1000, Runs: 1}, true},
		{"runs ceiling", Params{Competitiveness: 0.5, InitialWage: 1000, Runs: 10}, true},
		{"zero runs", Params{Competitiveness: 0.5, InitialWage: 1000, Runs: 0}, false},
		{"too many runs", Params{Competitiveness: 0.5, InitialWage: 1000, Runs: 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("expected ErrInvalidParameter, got %v", err)
				}
				var perr *ParameterError
				if !errors.As(err, &perr) {
					t.Errorf("expected *ParameterError, got %T", err)
				}
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"default", DefaultConfig(), true},
		{"zero step limit", Config{StepLimit: 0, Tolerance: 1e-3}, false},
		{"zero tolerance", Config{StepLimit: 50, Tolerance: 0}, false},
		{"negative tolerance", Config{StepLimit: 50, Tolerance: -1e-3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestTrajectoryAccessors(t *testing.T) {
	tr := Trajectory{
		{Step: 0, Wage: 100},
		{Step: 1, Wage: 90},
		{Step: 2, Wage: 85},
	}

	if got := tr.Terminal(); got != 85 {
		t.Errorf("expected terminal 85, got %g", got)
	}
	if got := tr.Steps(); got != 2 {
		t.Errorf("expected 2 steps, got %d", got)
	}
	if !tr.IsValid() {
		t.Error("expected valid trajectory")
	}

	wages := tr.Wages()
	if len(wages) != 3 || wages[0] != 100 || wages[2] != 85 {
		t.Errorf("unexpected wage column %v", wages)
	}

	clone := tr.Clone()
	clone[0].Wage = 1
	if tr[0].Wage != 100 {
		t.Error("clone aliases the original")
	}
}

func TestTrajectoryIsValid(t *testing.T) {
	tests := []struct {
		name  string
		tr    Trajectory
		valid bool
	}{
		{"empty", Trajectory{}, true},
		{"finite", Trajectory{{0, 100}, {1, 0}}, true},
		{"negative wage", Trajectory{{0, 100}, {1, -1}}, false},
		{"NaN wage", Trajectory{{0, 100}, {1, math.NaN()}}, false},
		{"infinite wage", Trajectory{{0, 100}, {1, math.Inf(1)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.IsValid(); got != tt.valid {
				t.Errorf("expected valid=%v, got %v", tt.valid, got)
			}
		})
	}
}
