package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ErrEmptyStudentID is returned when a student ID is empty.
var ErrEmptyStudentID = fmt.Errorf("%w: student ID cannot be empty", ErrValidation)

// Student is a person who can enroll in courses. CourseIDs keeps the order in
// which the student enrolled; the IDs resolve through the course map held by
// the service layer.
type Student struct {
	ID string `json:"id" yaml:"id"`
	Contact
	CourseIDs []string `json:"course_ids" yaml:"course_ids"`
}

// NewStudent creates a Student with trimmed fields and no enrollments.
// Returns an error if validation fails.
func NewStudent(id, name, email string) (*Student, error) {
	student := &Student{ID: strings.TrimSpace(id)}
	if err := validID(student.ID, ErrEmptyStudentID); err != nil {
		return nil, err
	}

	contact, err := NewContact(name, email)
	if err != nil {
		return nil, err
	}
	student.Contact = contact

	return student, nil
}

// Validate checks if the Student has valid data.
func (s *Student) Validate() error {
	if err := validID(s.ID, ErrEmptyStudentID); err != nil {
		return err
	}
	return s.Contact.Validate()
}

// IsEnrolledIn reports whether the student holds a reference to courseID.
func (s *Student) IsEnrolledIn(courseID string) bool {
	return slices.Contains(s.CourseIDs, courseID)
}

// AddCourse appends courseID unless it is already present.
func (s *Student) AddCourse(courseID string) {
	if s.IsEnrolledIn(courseID) {
		return
	}
	s.CourseIDs = append(s.CourseIDs, courseID)
}

// RemoveCourse removes courseID and reports whether it was present.
func (s *Student) RemoveCourse(courseID string) bool {
	i := slices.Index(s.CourseIDs, courseID)
	if i < 0 {
		return false
	}
	s.CourseIDs = slices.Delete(s.CourseIDs, i, i+1)
	return true
}

// Clone returns a deep copy so callers cannot mutate service state.
func (s *Student) Clone() *Student {
	c := *s
	c.CourseIDs = slices.Clone(s.CourseIDs)
	return &c
}
