package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the lifecycle engine. Handlers map these onto HTTP
// statuses; services never degrade one kind into another.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrConflict          = errors.New("concurrent mutation detected")
)

// ValidationError names the field and the violated rule so the caller can
// render a precise message.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, rule string) error {
	return &ValidationError{Field: field, Rule: rule}
}

// InvalidTransitionError names the current and attempted states.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}
