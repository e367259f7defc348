package domain

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidArgument is returned for malformed pagination or filter parameters
// rejected at the boundary before they reach a repository.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError is an application-detected, pre-write invariant failure.
// Message is a human-readable cause safe to return to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError returns a ValidationError with the given cause.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ConstraintError is a storage-detected constraint violation that slipped past
// validation (a race, or a constraint the validator cannot express). Constraint
// is the raw storage constraint name when available; Message is the translated
// human-readable cause.
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string { return e.Message }
