package domain

import (
	"errors"
	"testing"
)

func TestNewCourse(t *testing.T) {
	t.Parallel()

	course, err := NewCourse(" c1 ", " Algorithms ", 30)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if course.ID != "c1" || course.Name != "Algorithms" || course.Capacity != 30 {
		t.Errorf("Unexpected course %+v", course)
	}

	tests := []struct {
		name     string
		id       string
		cName    string
		capacity int
		wantErr  error
	}{
		{"empty id", "", "Algorithms", 3, ErrEmptyCourseID},
		{"empty name", "c1", "", 3, ErrEmptyName},
		{"zero capacity", "c1", "Algorithms", 0, ErrInvalidCapacity},
		{"negative capacity", "c1", "Algorithms", -2, ErrInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCourse(tt.id, tt.cName, tt.capacity); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCourseEnrollRespectsCapacity(t *testing.T) {
	t.Parallel()

	course := &Course{ID: "c1", Name: "Algorithms", Capacity: 2}

	if err := course.Enroll("a"); err != nil {
		t.Fatalf("Expected no error enrolling a, got %v", err)
	}
	if err := course.Enroll("b"); err != nil {
		t.Fatalf("Expected no error enrolling b, got %v", err)
	}
	if err := course.Enroll("c"); !errors.Is(err, ErrCourseFull) {
		t.Errorf("Expected %v, got %v", ErrCourseFull, err)
	}
	if err := course.Enroll("a"); !errors.Is(err, ErrAlreadyEnrolled) {
		t.Errorf("Expected %v, got %v", ErrAlreadyEnrolled, err)
	}
	if !course.IsFull() || course.Remaining() != 0 {
		t.Errorf("Expected full course, remaining %d", course.Remaining())
	}
	if course.Has("c") {
		t.Error("Rejected student must not hold a seat")
	}

	if !course.Drop("a") {
		t.Error("Expected Drop to free a seat")
	}
	if course.Remaining() != 1 {
		t.Errorf("Expected 1 remaining seat, got %d", course.Remaining())
	}
}

func TestCourseSetCapacity(t *testing.T) {
	t.Parallel()

	course := &Course{ID: "c1", Name: "Algorithms", Capacity: 3, StudentIDs: []string{"a", "b"}}

	if err := course.SetCapacity(1); !errors.Is(err, ErrCapacityBelowEnrollment) {
		t.Errorf("Expected %v, got %v", ErrCapacityBelowEnrollment, err)
	}
	if err := course.SetCapacity(0); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("Expected %v, got %v", ErrInvalidCapacity, err)
	}
	if course.Capacity != 3 {
		t.Errorf("Rejected change must keep capacity 3, got %d", course.Capacity)
	}
	if err := course.SetCapacity(2); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if course.Capacity != 2 {
		t.Errorf("Expected capacity 2, got %d", course.Capacity)
	}
}

func TestCourseValidateOverCapacity(t *testing.T) {
	t.Parallel()

	course := Course{ID: "c1", Name: "Algorithms", Capacity: 1, StudentIDs: []string{"a", "b"}}
	if err := course.Validate(); !errors.Is(err, ErrCapacityBelowEnrollment) {
		t.Errorf("Expected %v, got %v", ErrCapacityBelowEnrollment, err)
	}
}
