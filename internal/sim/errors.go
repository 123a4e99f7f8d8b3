package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrStepTooSmall indicates the adaptive step fell below the minimum.
	ErrStepTooSmall = errors.New("sim: adaptive step size below minimum")

	// ErrTooManySteps indicates the step budget for a run was exhausted.
	ErrTooManySteps = errors.New("sim: maximum step count exceeded")

	// ErrInvalidState indicates a NaN or Inf appeared in the state.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")
)

// ConfigError reports an invalid simulation or model parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// NumericError wraps an integration failure with the time it occurred at
// and the step size being attempted.
type NumericError struct {
	Time     float64
	StepSize float64
	Wrapped  error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("integration failed at t=%.6g (step %.3g): %v", e.Time, e.StepSize, e.Wrapped)
}

func (e *NumericError) Unwrap() error {
	return e.Wrapped
}
