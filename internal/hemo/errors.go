package hemo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation runs.
var (
	// ErrInvalidParameter indicates a parameter or run option outside its
	// valid range, detected before integration begins.
	ErrInvalidParameter = errors.New("hemo: invalid parameter")

	// ErrUnstable indicates a state variable became non-finite during
	// integration.
	ErrUnstable = errors.New("hemo: numerical instability")

	// ErrEmptyTrace indicates metrics extraction was attempted on an
	// empty trace.
	ErrEmptyTrace = errors.New("hemo: empty trace")
)

// StepError reports the step at which integration diverged and the
// offending value. It unwraps to ErrUnstable.
type StepError struct {
	Step     int
	Quantity string
	Value    float64
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v: %s non-finite (%v) at step %d", ErrUnstable, e.Quantity, e.Value, e.Step)
}

func (e *StepError) Unwrap() error {
	return ErrUnstable
}
