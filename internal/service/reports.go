package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/phrazzld/rollcall/internal/domain"
)

// CourseRoster is a course together with its enrolled students.
type CourseRoster struct {
	Course   *domain.Course
	Students []*domain.Student
}

// StudentSchedule is a student together with the courses the student holds a seat in.
type StudentSchedule struct {
	Student *domain.Student
	Courses []*domain.Course
}

// CourseSummary is one line of the summary report.
type CourseSummary struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Enrolled int    `json:"enrolled" yaml:"enrolled"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

// SummaryReport describes the enrollment status of every course.
type SummaryReport struct {
	Courses          []CourseSummary `json:"courses" yaml:"courses"`
	TotalStudents    int             `json:"total_students" yaml:"total_students"`
	TotalCourses     int             `json:"total_courses" yaml:"total_courses"`
	TotalEnrollments int             `json:"total_enrollments" yaml:"total_enrollments"`
}

// StudentsInCourse returns copies of the course and its students in enrollment order.
func (s *enrollmentServiceImpl) StudentsInCourse(ctx context.Context, courseID string) (*CourseRoster, error) {
	course, err := s.lookupCourse(courseID)
	if err != nil {
		return nil, err
	}

	roster := &CourseRoster{
		Course:   course.Clone(),
		Students: make([]*domain.Student, 0, len(course.StudentIDs)),
	}
	for _, id := range course.StudentIDs {
		if student, ok := s.studentByID[id]; ok {
			roster.Students = append(roster.Students, student.Clone())
		}
	}
	return roster, nil
}

// CoursesOfStudent returns copies of the student and its courses in enrollment order.
func (s *enrollmentServiceImpl) CoursesOfStudent(ctx context.Context, studentID string) (*StudentSchedule, error) {
	student, err := s.lookupStudent(studentID)
	if err != nil {
		return nil, err
	}

	schedule := &StudentSchedule{
		Student: student.Clone(),
		Courses: make([]*domain.Course, 0, len(student.CourseIDs)),
	}
	for _, id := range student.CourseIDs {
		if course, ok := s.courseByID[id]; ok {
			schedule.Courses = append(schedule.Courses, course.Clone())
		}
	}
	return schedule, nil
}

// Summary lists every course ordered by ID with its seat usage.
func (s *enrollmentServiceImpl) Summary(ctx context.Context) *SummaryReport {
	report := &SummaryReport{
		Courses:       make([]CourseSummary, 0, len(s.courseByID)),
		TotalStudents: len(s.studentByID),
		TotalCourses:  len(s.courseByID),
	}
	for _, course := range s.ListCourses(ctx) {
		report.Courses = append(report.Courses, CourseSummary{
			ID:       course.ID,
			Name:     course.Name,
			Enrolled: len(course.StudentIDs),
			Capacity: course.Capacity,
		})
		report.TotalEnrollments += len(course.StudentIDs)
	}
	return report
}

// ListStudents returns copies of every student ordered by ID.
func (s *enrollmentServiceImpl) ListStudents(ctx context.Context) []*domain.Student {
	students := make([]*domain.Student, 0, len(s.studentByID))
	for _, student := range s.studentByID {
		students = append(students, student.Clone())
	}
	slices.SortFunc(students, func(a, b *domain.Student) int { return cmp.Compare(a.ID, b.ID) })
	return students
}

// ListCourses returns copies of every course ordered by ID.
func (s *enrollmentServiceImpl) ListCourses(ctx context.Context) []*domain.Course {
	courses := make([]*domain.Course, 0, len(s.courseByID))
	for _, course := range s.courseByID {
		courses = append(courses, course.Clone())
	}
	slices.SortFunc(courses, func(a, b *domain.Course) int { return cmp.Compare(a.ID, b.ID) })
	return courses
}
