package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Common error kinds shared across the domain packages. Everything here is
// recoverable: callers get told why the operation was refused, and no state
// is mutated on these paths.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrDuplicate         = errors.New("duplicate entry")
)

// ValidationError reports malformed or out-of-range input along with the
// offending field names.
type ValidationError struct {
	Fields []string
}

func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// InvalidTransitionError reports a state machine rule violation with the
// current state and the attempted event.
type InvalidTransitionError struct {
	From      string
	Attempted string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s from state %s", e.Attempted, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
