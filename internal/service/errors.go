package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/rollcall/internal/domain"
)

// Common service errors - sentinel errors used by the enrollment service.
// These errors represent expected conditions that callers check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Domain validation errors are returned unchanged
// 3. Storage failures are wrapped in EnrollmentServiceError
// 4. The CLI maps errors to console messages
var (
	// ErrStudentNotFound indicates that no student has the given ID.
	ErrStudentNotFound = errors.New("student not found")

	// ErrCourseNotFound indicates that no course has the given ID.
	ErrCourseNotFound = errors.New("course not found")

	// ErrDuplicateStudent indicates that a student with the given ID already exists.
	ErrDuplicateStudent = errors.New("student ID already exists")

	// ErrDuplicateCourse indicates that a course with the given ID already exists.
	ErrDuplicateCourse = errors.New("course ID already exists")

	// ErrNotEnrolled indicates that the student holds no seat in the course.
	ErrNotEnrolled = errors.New("student is not enrolled in this course")

	// ErrSameCourse indicates a move whose source and target are the same course.
	ErrSameCourse = errors.New("source and target course are the same")

	// ErrCourseFull indicates that the course has no seats left.
	ErrCourseFull = domain.ErrCourseFull

	// ErrAlreadyEnrolled indicates that the student already holds a seat in the course.
	ErrAlreadyEnrolled = domain.ErrAlreadyEnrolled
)

var sentinels = []error{
	ErrStudentNotFound,
	ErrCourseNotFound,
	ErrDuplicateStudent,
	ErrDuplicateCourse,
	ErrNotEnrolled,
	ErrSameCourse,
	ErrCourseFull,
	ErrAlreadyEnrolled,
}

// EnrollmentServiceError wraps errors from the enrollment service with context.
type EnrollmentServiceError struct {
	// Operation is the operation that failed (e.g., "add_student", "enroll")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for EnrollmentServiceError.
func (e *EnrollmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrollment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("enrollment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *EnrollmentServiceError) Unwrap() error {
	return e.Err
}

// NewEnrollmentServiceError creates a new EnrollmentServiceError.
// It returns known sentinel and validation errors directly without wrapping.
func NewEnrollmentServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if domain.IsValidationError(err) {
		return err
	}

	return &EnrollmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
