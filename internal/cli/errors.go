package cli

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/service"
	"github.com/phrazzld/rollcall/internal/store"
)

// errorMessage maps service and domain errors to the line shown to the user.
// Storage details never reach the console; they are in the log.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrDuplicateStudent):
		return "Error: Student ID already exists."
	case errors.Is(err, service.ErrDuplicateCourse):
		return "Error: Course ID already exists."
	case errors.Is(err, service.ErrStudentNotFound):
		return "Error: Invalid Student ID."
	case errors.Is(err, service.ErrCourseNotFound):
		return "Error: Invalid Course ID."
	case errors.Is(err, service.ErrAlreadyEnrolled):
		return "Error: Student is already enrolled in this course."
	case errors.Is(err, service.ErrCourseFull):
		return "Error: Course capacity full."
	case errors.Is(err, service.ErrNotEnrolled):
		return "Error: Student is not enrolled in this course."
	case errors.Is(err, service.ErrSameCourse):
		return "Error: Current and new course must be different."

	case errors.Is(err, domain.ErrCapacityBelowEnrollment):
		return "Error: Capacity cannot be lower than the number of enrolled students."
	case errors.Is(err, domain.ErrInvalidCapacity):
		return "Error: Capacity must be a positive integer."
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Error: Invalid email format."
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Error: IDs cannot contain line breaks."
	case domain.IsValidationError(err):
		return "Error: All fields are required."

	case errors.Is(err, store.ErrIO):
		return "Error: Could not save changes. See the log for details."
	default:
		return "Error: An unexpected error occurred."
	}
}

// formMessage turns the first failed validator rule into a console message.
func formMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Error: Invalid input."
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Error: %s is required.", fe.Field())
	case "gt":
		return fmt.Sprintf("Error: %s must be a positive integer.", fe.Field())
	case "contact_email":
		return "Error: Invalid email format."
	default:
		return fmt.Sprintf("Error: Invalid %s.", fe.Field())
	}
}
