package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation requests.
var (
	// ErrInvalidParameter indicates a request parameter outside its valid range.
	ErrInvalidParameter = errors.New("sim: parameter out of valid bounds")

	// ErrNumericInstability indicates a trajectory produced a NaN or Inf wage.
	ErrNumericInstability = errors.New("sim: wage diverged (NaN or Inf detected)")

	// ErrEmptyResults indicates aggregation was asked for zero runs.
	ErrEmptyResults = errors.New("sim: no run results to aggregate")

	// ErrUnknownProcess indicates a process name with no registered factory.
	ErrUnknownProcess = errors.New("sim: unknown process")
)

// ParameterError reports which input failed validation and why.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("sim: invalid %s %g: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// InstabilityError records where a trajectory became non-finite. The
// run that produced it aborts the whole request; no partial report is
// ever returned.
type InstabilityError struct {
	Run  int
	Step int
	Wage float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("sim: run %d diverged at step %d (wage=%g)", e.Run, e.Step, e.Wage)
}

func (e *InstabilityError) Unwrap() error { return ErrNumericInstability }
