package domain

import (
	"fmt"
	"strings"
)

// Enrollment is the persisted (student, course) pair. It carries no state of
// its own: its existence means the student and the course reference each other.
type Enrollment struct {
	StudentID string `json:"student_id" yaml:"student_id"`
	CourseID  string `json:"course_id" yaml:"course_id"`
}

// NewEnrollment creates an Enrollment pair from trimmed IDs.
func NewEnrollment(studentID, courseID string) (Enrollment, error) {
	e := Enrollment{
		StudentID: strings.TrimSpace(studentID),
		CourseID:  strings.TrimSpace(courseID),
	}
	if err := e.Validate(); err != nil {
		return Enrollment{}, err
	}
	return e, nil
}

// Validate checks that both IDs are usable.
func (e Enrollment) Validate() error {
	if err := validID(e.StudentID, ErrEmptyStudentID); err != nil {
		return err
	}
	return validID(e.CourseID, ErrEmptyCourseID)
}

// String renders the pair for logs.
func (e Enrollment) String() string {
	return fmt.Sprintf("%s->%s", e.StudentID, e.CourseID)
}

// ForStudent returns a predicate matching every pair that involves studentID.
func ForStudent(studentID string) func(Enrollment) bool {
	return func(e Enrollment) bool { return e.StudentID == studentID }
}

// ForCourse returns a predicate matching every pair that involves courseID.
func ForCourse(courseID string) func(Enrollment) bool {
	return func(e Enrollment) bool { return e.CourseID == courseID }
}

// Pair returns a predicate matching exactly one (student, course) pair.
func Pair(studentID, courseID string) func(Enrollment) bool {
	return func(e Enrollment) bool { return e.StudentID == studentID && e.CourseID == courseID }
}
