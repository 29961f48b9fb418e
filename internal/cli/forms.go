package cli

import (
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/rollcall/internal/domain"
)

// validate checks every form. Field names in its errors come from the label tag.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return domain.ValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type studentForm struct {
	ID    string `label:"Student ID" validate:"required"`
	Name  string `label:"Student Name" validate:"required"`
	Email string `label:"Student Email" validate:"required,contact_email"`
}

// studentUpdateForm leaves blank fields unchanged.
type studentUpdateForm struct {
	ID    string `label:"Student ID" validate:"required"`
	Name  string `label:"Student Name"`
	Email string `label:"Student Email" validate:"omitempty,contact_email"`
}

type courseForm struct {
	ID       string `label:"Course ID" validate:"required"`
	Name     string `label:"Course Name" validate:"required"`
	Capacity int    `label:"Capacity" validate:"gt=0"`
}

// courseUpdateForm leaves a blank name or a nil capacity unchanged. A typed
// capacity must still be positive.
type courseUpdateForm struct {
	ID       string `label:"Course ID" validate:"required"`
	Name     string `label:"Course Name"`
	Capacity *int   `label:"Capacity" validate:"omitnil,gt=0"`
}

type enrollmentForm struct {
	StudentID string `label:"Student ID" validate:"required"`
	CourseID  string `label:"Course ID" validate:"required"`
}

type moveForm struct {
	StudentID    string `label:"Student ID" validate:"required"`
	FromCourseID string `label:"Current Course ID" validate:"required"`
	ToCourseID   string `label:"New Course ID" validate:"required"`
}

type studentIDForm struct {
	ID string `label:"Student ID" validate:"required"`
}

type courseIDForm struct {
	ID string `label:"Course ID" validate:"required"`
}
