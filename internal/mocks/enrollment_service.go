package mocks

import (
	"context"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/service"
)

// MockEnrollmentService implements service.EnrollmentService for testing
type MockEnrollmentService struct {
	// Custom behavior functions
	AddStudentFn       func(ctx context.Context, id, name, email string) (*domain.Student, error)
	AddCourseFn        func(ctx context.Context, id, name string, capacity int) (*domain.Course, error)
	EnrollFn           func(ctx context.Context, studentID, courseID string) error
	DropFn             func(ctx context.Context, studentID, courseID string) error
	MoveEnrollmentFn   func(ctx context.Context, studentID, fromCourseID, toCourseID string) error
	UpdateStudentFn    func(ctx context.Context, id, name, email string) (*domain.Student, error)
	UpdateCourseFn     func(ctx context.Context, id, name string, capacity int) (*domain.Course, error)
	DeleteStudentFn    func(ctx context.Context, id string) error
	DeleteCourseFn     func(ctx context.Context, id string) error
	StudentsInCourseFn func(ctx context.Context, courseID string) (*service.CourseRoster, error)
	CoursesOfStudentFn func(ctx context.Context, studentID string) (*service.StudentSchedule, error)
	SummaryFn          func(ctx context.Context) *service.SummaryReport

	// Default return values
	Student      *domain.Student
	Course       *domain.Course
	Students     []*domain.Student
	Courses      []*domain.Course
	DefaultError error
}

var _ service.EnrollmentService = (*MockEnrollmentService)(nil)

// AddStudent implements the EnrollmentService.AddStudent method
func (m *MockEnrollmentService) AddStudent(ctx context.Context, id, name, email string) (*domain.Student, error) {
	if m.AddStudentFn != nil {
		return m.AddStudentFn(ctx, id, name, email)
	}
	return m.Student, m.DefaultError
}

// AddCourse implements the EnrollmentService.AddCourse method
func (m *MockEnrollmentService) AddCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error) {
	if m.AddCourseFn != nil {
		return m.AddCourseFn(ctx, id, name, capacity)
	}
	return m.Course, m.DefaultError
}

// Enroll implements the EnrollmentService.Enroll method
func (m *MockEnrollmentService) Enroll(ctx context.Context, studentID, courseID string) error {
	if m.EnrollFn != nil {
		return m.EnrollFn(ctx, studentID, courseID)
	}
	return m.DefaultError
}

// Drop implements the EnrollmentService.Drop method
func (m *MockEnrollmentService) Drop(ctx context.Context, studentID, courseID string) error {
	if m.DropFn != nil {
		return m.DropFn(ctx, studentID, courseID)
	}
	return m.DefaultError
}

// MoveEnrollment implements the EnrollmentService.MoveEnrollment method
func (m *MockEnrollmentService) MoveEnrollment(ctx context.Context, studentID, fromCourseID, toCourseID string) error {
	if m.MoveEnrollmentFn != nil {
		return m.MoveEnrollmentFn(ctx, studentID, fromCourseID, toCourseID)
	}
	return m.DefaultError
}

// UpdateStudent implements the EnrollmentService.UpdateStudent method
func (m *MockEnrollmentService) UpdateStudent(ctx context.Context, id, name, email string) (*domain.Student, error) {
	if m.UpdateStudentFn != nil {
		return m.UpdateStudentFn(ctx, id, name, email)
	}
	return m.Student, m.DefaultError
}

// UpdateCourse implements the EnrollmentService.UpdateCourse method
func (m *MockEnrollmentService) UpdateCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error) {
	if m.UpdateCourseFn != nil {
		return m.UpdateCourseFn(ctx, id, name, capacity)
	}
	return m.Course, m.DefaultError
}

// DeleteStudent implements the EnrollmentService.DeleteStudent method
func (m *MockEnrollmentService) DeleteStudent(ctx context.Context, id string) error {
	if m.DeleteStudentFn != nil {
		return m.DeleteStudentFn(ctx, id)
	}
	return m.DefaultError
}

// DeleteCourse implements the EnrollmentService.DeleteCourse method
func (m *MockEnrollmentService) DeleteCourse(ctx context.Context, id string) error {
	if m.DeleteCourseFn != nil {
		return m.DeleteCourseFn(ctx, id)
	}
	return m.DefaultError
}

// StudentsInCourse implements the EnrollmentService.StudentsInCourse method
func (m *MockEnrollmentService) StudentsInCourse(ctx context.Context, courseID string) (*service.CourseRoster, error) {
	if m.StudentsInCourseFn != nil {
		return m.StudentsInCourseFn(ctx, courseID)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return &service.CourseRoster{Course: m.Course, Students: m.Students}, nil
}

// CoursesOfStudent implements the EnrollmentService.CoursesOfStudent method
func (m *MockEnrollmentService) CoursesOfStudent(ctx context.Context, studentID string) (*service.StudentSchedule, error) {
	if m.CoursesOfStudentFn != nil {
		return m.CoursesOfStudentFn(ctx, studentID)
	}
	if m.DefaultError != nil {
		return nil, m.DefaultError
	}
	return &service.StudentSchedule{Student: m.Student, Courses: m.Courses}, nil
}

// Summary implements the EnrollmentService.Summary method
func (m *MockEnrollmentService) Summary(ctx context.Context) *service.SummaryReport {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx)
	}
	return &service.SummaryReport{}
}

// ListStudents implements the EnrollmentService.ListStudents method
func (m *MockEnrollmentService) ListStudents(ctx context.Context) []*domain.Student {
	return m.Students
}

// ListCourses implements the EnrollmentService.ListCourses method
func (m *MockEnrollmentService) ListCourses(ctx context.Context) []*domain.Course {
	return m.Courses
}
