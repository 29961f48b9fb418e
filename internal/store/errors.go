package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrIO is returned when the underlying file cannot be read or written.
	// The wrapped error carries the operating system details.
	ErrIO = errors.New("storage I/O failed")

	// ErrMalformedRecord is returned when a persisted record cannot be decoded.
	// Loaders skip such records and report them through the logger.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsIOError checks if the error was caused by a failed read or write.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "student", "course")
	Operation string // The operation that failed (e.g., "load", "append")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewIOError wraps an operating system error so that it matches ErrIO while
// keeping the original error reachable through errors.As.
func NewIOError(entity, operation, path string, err error) *StoreError {
	return NewStoreError(entity, operation, path, fmt.Errorf("%w: %w", ErrIO, err))
}
