package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel all validation failures unwrap to.
// Use errors.Is(err, models.ErrValidation) at API boundaries.
var ErrValidation = errors.New("validation failed")

// ValidationError reports invalid input on a single field. It is raised at
// the offending call and implies no state was mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
