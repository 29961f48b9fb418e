package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Every field-specific validation error below wraps it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID contains characters that cannot be
	// stored in a line-oriented record.
	ErrInvalidID = fmt.Errorf("%w: ID must not contain line breaks", ErrValidation)

	// ErrEmptyName is returned when a student or course name is empty.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)

	// ErrEmptyEmail is returned when a student email is empty.
	ErrEmptyEmail = fmt.Errorf("%w: email cannot be empty", ErrValidation)

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)
)

// IsValidationError reports whether err is any kind of validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
