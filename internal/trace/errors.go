package trace

import (
	"errors"
	"fmt"
)

// Domain errors for trace construction and decoding.
var (
	// ErrNegativeIndex indicates a step was built with an index below zero.
	ErrNegativeIndex = errors.New("trace: negative index")

	// ErrUnknownKind indicates a step kind name that is not part of the model.
	ErrUnknownKind = errors.New("trace: unknown step kind")
)

// StepError wraps an error with the step that caused it.
type StepError struct {
	Kind    Kind
	Indices []int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Kind, e.Indices, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
