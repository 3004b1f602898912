package errors

import (
	"errors"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidOrder = errors.New("invalid order")
)

// Violation names a single offending request field.
type Violation struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in an order payload.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError from violations in reporting order.
func NewValidationError(violations ...Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrInvalidOrder.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrInvalidOrder.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets callers match validation failures with errors.Is(err, ErrInvalidOrder).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidOrder
}
