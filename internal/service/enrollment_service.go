package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/events"
	"github.com/phrazzld/rollcall/internal/store"
)

// EnrollmentService provides every student, course and enrollment operation.
// It is not safe for concurrent use; the application drives it from a single
// console loop.
type EnrollmentService interface {
	// AddStudent creates a student. Returns ErrDuplicateStudent if the ID is taken.
	AddStudent(ctx context.Context, id, name, email string) (*domain.Student, error)

	// AddCourse creates a course. Returns ErrDuplicateCourse if the ID is taken.
	AddCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error)

	// Enroll gives a student a seat in a course.
	Enroll(ctx context.Context, studentID, courseID string) error

	// Drop frees the seat a student holds in a course.
	Drop(ctx context.Context, studentID, courseID string) error

	// MoveEnrollment moves a student's seat from one course to another.
	// The move is a removal followed by an addition and is not atomic on crash.
	MoveEnrollment(ctx context.Context, studentID, fromCourseID, toCourseID string) error

	// UpdateStudent rewrites a student's name and email.
	// Empty arguments keep the current value.
	UpdateStudent(ctx context.Context, id, name, email string) (*domain.Student, error)

	// UpdateCourse rewrites a course's name and capacity.
	// An empty name or a zero capacity keeps the current value.
	UpdateCourse(ctx context.Context, id, name string, capacity int) (*domain.Course, error)

	// DeleteStudent removes a student and all of the student's enrollment pairs.
	DeleteStudent(ctx context.Context, id string) error

	// DeleteCourse removes a course and all of the course's enrollment pairs.
	DeleteCourse(ctx context.Context, id string) error

	// StudentsInCourse lists the students of a course in enrollment order.
	StudentsInCourse(ctx context.Context, courseID string) (*CourseRoster, error)

	// CoursesOfStudent lists the courses of a student in enrollment order.
	CoursesOfStudent(ctx context.Context, studentID string) (*StudentSchedule, error)

	// Summary reports the enrollment status of every course.
	Summary(ctx context.Context) *SummaryReport

	// ListStudents returns every student ordered by ID.
	ListStudents(ctx context.Context) []*domain.Student

	// ListCourses returns every course ordered by ID.
	ListCourses(ctx context.Context) []*domain.Course
}

// enrollmentServiceImpl implements the EnrollmentService interface.
// Students and courses live in two ID-keyed maps; the order slices remember
// insertion order so rewritten files keep their original line order.
type enrollmentServiceImpl struct {
	students    store.StudentStore
	courses     store.CourseStore
	enrollments store.EnrollmentStore
	emitter     events.EventEmitter
	logger      *slog.Logger

	studentByID  map[string]*domain.Student
	courseByID   map[string]*domain.Course
	studentOrder []string
	courseOrder  []string
}

// NewEnrollmentService creates a new EnrollmentService and loads the current
// records from the stores.
//
// It returns an error if any of the stores is nil. Failures while loading are
// logged and the service starts with whatever could be read. A nil emitter
// disables change events; a nil logger falls back to slog.Default().
func NewEnrollmentService(
	ctx context.Context,
	students store.StudentStore,
	courses store.CourseStore,
	enrollments store.EnrollmentStore,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (EnrollmentService, error) {
	if students == nil {
		return nil, &EnrollmentServiceError{Operation: "create_service", Message: "student store cannot be nil"}
	}
	if courses == nil {
		return nil, &EnrollmentServiceError{Operation: "create_service", Message: "course store cannot be nil"}
	}
	if enrollments == nil {
		return nil, &EnrollmentServiceError{Operation: "create_service", Message: "enrollment store cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "enrollment_service")

	if emitter == nil {
		emitter = events.NewInMemoryEventEmitter(logger)
	}

	s := &enrollmentServiceImpl{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		emitter:     emitter,
		logger:      logger,
		studentByID: make(map[string]*domain.Student),
		courseByID:  make(map[string]*domain.Course),
	}
	s.load(ctx)

	return s, nil
}

// load fills the maps from storage. Pairs that name unknown records, repeat an
// earlier pair or overflow a course are dropped, and the enrollment file is
// compacted so storage matches memory again. Compaction is skipped when any
// load failed, since a missing table would make every pair look dangling.
func (s *enrollmentServiceImpl) load(ctx context.Context) {
	complete := true

	students, err := s.students.LoadAll(ctx)
	if err != nil {
		complete = false
		s.logger.Error("failed to load students, starting without them", "error", err)
	}
	for i := range students {
		student := students[i]
		student.CourseIDs = nil
		if _, exists := s.studentByID[student.ID]; exists {
			s.logger.Warn("ignoring duplicate student record", "student_id", student.ID)
			continue
		}
		s.studentByID[student.ID] = &student
		s.studentOrder = append(s.studentOrder, student.ID)
	}

	courses, err := s.courses.LoadAll(ctx)
	if err != nil {
		complete = false
		s.logger.Error("failed to load courses, starting without them", "error", err)
	}
	for i := range courses {
		course := courses[i]
		course.StudentIDs = nil
		if _, exists := s.courseByID[course.ID]; exists {
			s.logger.Warn("ignoring duplicate course record", "course_id", course.ID)
			continue
		}
		s.courseByID[course.ID] = &course
		s.courseOrder = append(s.courseOrder, course.ID)
	}

	pairs, err := s.enrollments.LoadAll(ctx)
	if err != nil {
		complete = false
		s.logger.Error("failed to load enrollments, starting without them", "error", err)
	}

	kept := make([]domain.Enrollment, 0, len(pairs))
	for _, pair := range pairs {
		student, course := s.studentByID[pair.StudentID], s.courseByID[pair.CourseID]
		if student == nil || course == nil {
			s.logger.Warn("dropping enrollment for unknown record", "enrollment", pair.String())
			continue
		}
		if err := course.Enroll(student.ID); err != nil {
			s.logger.Warn("dropping enrollment", "enrollment", pair.String(), "reason", err.Error())
			continue
		}
		student.AddCourse(course.ID)
		kept = append(kept, pair)
	}

	if dropped := len(pairs) - len(kept); dropped > 0 && complete {
		if err := s.enrollments.RewriteAll(ctx, kept); err != nil {
			s.logger.Error("failed to compact enrollments", "error", err, "dropped", dropped)
		} else {
			s.logger.Info("compacted enrollments", "dropped", dropped)
		}
	}

	s.logger.Debug("loaded records",
		"students", len(s.studentByID),
		"courses", len(s.courseByID),
		"enrollments", len(kept))
}

// emit publishes a change event. Failures are logged and never reach the caller.
func (s *enrollmentServiceImpl) emit(ctx context.Context, eventType string, payload interface{}) {
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		s.logger.Warn("failed to build event", "error", err, "event_type", eventType)
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit event", "error", err, "event_type", eventType)
	}
}

func (s *enrollmentServiceImpl) lookupStudent(id string) (*domain.Student, error) {
	student, ok := s.studentByID[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *enrollmentServiceImpl) lookupCourse(id string) (*domain.Course, error) {
	course, ok := s.courseByID[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// studentRecords returns the persisted form of every student in file order,
// with replace substituted for the student sharing its ID.
func (s *enrollmentServiceImpl) studentRecords(replace *domain.Student) []domain.Student {
	records := make([]domain.Student, 0, len(s.studentOrder))
	for _, id := range s.studentOrder {
		student := s.studentByID[id]
		if replace != nil && replace.ID == id {
			student = replace
		}
		records = append(records, domain.Student{ID: student.ID, Contact: student.Contact})
	}
	return records
}

// courseRecords returns the persisted form of every course in file order,
// with replace substituted for the course sharing its ID.
func (s *enrollmentServiceImpl) courseRecords(replace *domain.Course) []domain.Course {
	records := make([]domain.Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		course := s.courseByID[id]
		if replace != nil && replace.ID == id {
			course = replace
		}
		records = append(records, domain.Course{ID: course.ID, Name: course.Name, Capacity: course.Capacity})
	}
	return records
}

func removeID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}

// logStoreError logs a failed storage call at the level its cause deserves.
func (s *enrollmentServiceImpl) logStoreError(msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, store.ErrInvalidEntity) {
		s.logger.Warn(msg, args...)
		return
	}
	s.logger.Error(msg, args...)
}
