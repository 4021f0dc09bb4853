package sim

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidInput indicates an out-of-domain environmental value was
	// supplied for a simulated day (negative radiation, CO₂, temperature,
	// or a photoperiod outside 0-24 h).
	ErrInvalidInput = errors.New("sim: invalid environment input")

	// ErrInvalidConfig indicates a structurally invalid parameter set was
	// supplied at run setup (non-positive thermal mass, horizon <= 0,
	// partition fractions that cannot sum to 1, ...).
	ErrInvalidConfig = errors.New("sim: invalid configuration")
)

// StepError wraps an error with the day on which the step was rejected.
// The run's state is unchanged by a failed step.
type StepError struct {
	Day     int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("day %d: %v", e.Day, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
