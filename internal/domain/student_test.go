package domain

import (
	"errors"
	"testing"
)

func TestNewStudent(t *testing.T) {
	t.Parallel()

	student, err := NewStudent("  s1 ", " Ada Lovelace ", " ada@example.com ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if student.ID != "s1" {
		t.Errorf("Expected ID %q, got %q", "s1", student.ID)
	}
	if student.Name != "Ada Lovelace" {
		t.Errorf("Expected name %q, got %q", "Ada Lovelace", student.Name)
	}
	if student.Email != "ada@example.com" {
		t.Errorf("Expected email %q, got %q", "ada@example.com", student.Email)
	}
	if len(student.CourseIDs) != 0 {
		t.Errorf("Expected no courses, got %v", student.CourseIDs)
	}
}

func TestNewStudentValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		sName   string
		email   string
		wantErr error
	}{
		{"empty id", "", "Ada", "ada@example.com", ErrEmptyStudentID},
		{"id with newline", "s\n1", "Ada", "ada@example.com", ErrInvalidID},
		{"empty name", "s1", "  ", "ada@example.com", ErrEmptyName},
		{"empty email", "s1", "Ada", "", ErrEmptyEmail},
		{"email without at", "s1", "Ada", "ada.example.com", ErrInvalidEmail},
		{"email without tld", "s1", "Ada", "ada@example", ErrInvalidEmail},
		{"email with short tld", "s1", "Ada", "ada@example.c", ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStudent(tt.id, tt.sName, tt.email)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !IsValidationError(err) {
				t.Errorf("Expected a validation error, got %v", err)
			}
		})
	}
}

func TestStudentCourses(t *testing.T) {
	t.Parallel()

	student := &Student{ID: "s1", Contact: Contact{Name: "Ada", Email: "ada@example.com"}}

	student.AddCourse("c1")
	student.AddCourse("c2")
	student.AddCourse("c1")

	if got := len(student.CourseIDs); got != 2 {
		t.Fatalf("Expected 2 courses, got %d", got)
	}
	if student.CourseIDs[0] != "c1" || student.CourseIDs[1] != "c2" {
		t.Errorf("Expected enrollment order [c1 c2], got %v", student.CourseIDs)
	}
	if !student.IsEnrolledIn("c2") {
		t.Error("Expected student to be enrolled in c2")
	}

	if !student.RemoveCourse("c1") {
		t.Error("Expected RemoveCourse to report removal")
	}
	if student.RemoveCourse("c1") {
		t.Error("Expected second RemoveCourse to report nothing removed")
	}
	if student.IsEnrolledIn("c1") {
		t.Error("Expected student not to be enrolled in c1")
	}
}

func TestStudentClone(t *testing.T) {
	t.Parallel()

	student := &Student{ID: "s1", Contact: Contact{Name: "Ada", Email: "ada@example.com"}, CourseIDs: []string{"c1"}}
	clone := student.Clone()
	clone.CourseIDs[0] = "changed"
	clone.Name = "Grace"

	if student.CourseIDs[0] != "c1" {
		t.Errorf("Clone shares course slice with original: %v", student.CourseIDs)
	}
	if student.Name != "Ada" {
		t.Errorf("Clone shares contact with original: %q", student.Name)
	}
}
