package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Course-specific errors
var (
	// ErrEmptyCourseID is returned when a course ID is empty.
	ErrEmptyCourseID = fmt.Errorf("%w: course ID cannot be empty", ErrValidation)

	// ErrInvalidCapacity is returned when a capacity is not a positive integer.
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be a positive integer", ErrValidation)

	// ErrCapacityBelowEnrollment is returned when a capacity change would leave
	// more students enrolled than the course can hold.
	ErrCapacityBelowEnrollment = fmt.Errorf("%w: capacity is below current enrollment", ErrValidation)

	// ErrCourseFull is returned when a course has no seats left.
	ErrCourseFull = errors.New("course capacity is full")

	// ErrAlreadyEnrolled is returned when the student already holds a seat.
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
)

// Course is a class with a fixed number of seats. StudentIDs keeps enrollment
// order and never grows beyond Capacity.
type Course struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Capacity   int      `json:"capacity" yaml:"capacity"`
	StudentIDs []string `json:"student_ids" yaml:"student_ids"`
}

// NewCourse creates a Course with trimmed fields and no enrollments.
// Returns an error if validation fails.
func NewCourse(id, name string, capacity int) (*Course, error) {
	course := &Course{
		ID:       strings.TrimSpace(id),
		Name:     strings.TrimSpace(name),
		Capacity: capacity,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if err := validID(c.ID, ErrEmptyCourseID); err != nil {
		return err
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if len(c.StudentIDs) > c.Capacity {
		return ErrCapacityBelowEnrollment
	}
	return nil
}

// Has reports whether studentID holds a seat in the course.
func (c *Course) Has(studentID string) bool {
	return slices.Contains(c.StudentIDs, studentID)
}

// IsFull reports whether every seat is taken.
func (c *Course) IsFull() bool {
	return len(c.StudentIDs) >= c.Capacity
}

// Remaining returns the number of free seats.
func (c *Course) Remaining() int {
	return max(c.Capacity-len(c.StudentIDs), 0)
}

// Enroll gives studentID a seat.
// Returns ErrAlreadyEnrolled or ErrCourseFull if that is not possible.
func (c *Course) Enroll(studentID string) error {
	if c.Has(studentID) {
		return ErrAlreadyEnrolled
	}
	if c.IsFull() {
		return ErrCourseFull
	}
	c.StudentIDs = append(c.StudentIDs, studentID)
	return nil
}

// Drop frees the seat held by studentID and reports whether there was one.
func (c *Course) Drop(studentID string) bool {
	i := slices.Index(c.StudentIDs, studentID)
	if i < 0 {
		return false
	}
	c.StudentIDs = slices.Delete(c.StudentIDs, i, i+1)
	return true
}

// SetCapacity changes the number of seats.
// It refuses to shrink the course below its current enrollment.
func (c *Course) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	if capacity < len(c.StudentIDs) {
		return ErrCapacityBelowEnrollment
	}
	c.Capacity = capacity
	return nil
}

// Clone returns a deep copy so callers cannot mutate service state.
func (c *Course) Clone() *Course {
	cp := *c
	cp.StudentIDs = slices.Clone(c.StudentIDs)
	return &cp
}
