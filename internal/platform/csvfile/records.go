package csvfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/store"
)

var studentCodec = codec[domain.Student]{
	entity: "student",
	fields: 3,
	key:    func(s domain.Student) string { return s.ID },
	encode: func(s domain.Student) []string {
		return []string{s.ID, s.Name, s.Email}
	},
	decode: func(f []string) (domain.Student, error) {
		return domain.Student{ID: f[0], Contact: domain.Contact{Name: f[1], Email: f[2]}}, nil
	},
}

var courseCodec = codec[domain.Course]{
	entity: "course",
	fields: 3,
	key:    func(c domain.Course) string { return c.ID },
	encode: func(c domain.Course) []string {
		return []string{c.ID, c.Name, strconv.Itoa(c.Capacity)}
	},
	decode: func(f []string) (domain.Course, error) {
		capacity, err := strconv.Atoi(f[2])
		if err != nil {
			return domain.Course{}, fmt.Errorf("capacity %q is not a number", f[2])
		}
		if capacity <= 0 {
			return domain.Course{}, fmt.Errorf("capacity %d is not positive", capacity)
		}
		return domain.Course{ID: f[0], Name: f[1], Capacity: capacity}, nil
	},
}

var enrollmentCodec = codec[domain.Enrollment]{
	entity: "enrollment",
	fields: 2,
	key: func(e domain.Enrollment) string {
		if e.StudentID == "" || e.CourseID == "" {
			return ""
		}
		return e.String()
	},
	encode: func(e domain.Enrollment) []string {
		return []string{e.StudentID, e.CourseID}
	},
	decode: func(f []string) (domain.Enrollment, error) {
		return domain.NewEnrollment(f[0], f[1])
	},
}

// NewStudentTable returns the student table stored at path.
func NewStudentTable(path string, logger *slog.Logger) *Table[domain.Student] {
	return newTable(path, studentCodec, logger)
}

// NewCourseTable returns the course table stored at path.
func NewCourseTable(path string, logger *slog.Logger) *Table[domain.Course] {
	return newTable(path, courseCodec, logger)
}

// NewEnrollmentTable returns the enrollment table stored at path.
func NewEnrollmentTable(path string, logger *slog.Logger) *Table[domain.Enrollment] {
	return newTable(path, enrollmentCodec, logger)
}

// Ensure the tables implement the store interfaces
var (
	_ store.StudentStore    = (*Table[domain.Student])(nil)
	_ store.CourseStore     = (*Table[domain.Course])(nil)
	_ store.EnrollmentStore = (*Table[domain.Enrollment])(nil)
)

// Files names the three files inside a data directory.
type Files struct {
	Students    string
	Courses     string
	Enrollments string
}

// DefaultFiles are the file names used when none are configured.
var DefaultFiles = Files{
	Students:    "students.csv",
	Courses:     "courses.csv",
	Enrollments: "enrollments.csv",
}

// Tables groups the three tables of one data directory.
type Tables struct {
	Students    *Table[domain.Student]
	Courses     *Table[domain.Course]
	Enrollments *Table[domain.Enrollment]
}

// Open prepares the tables inside dir, creating the directory and any
// missing file. Empty names in files fall back to DefaultFiles.
func Open(dir string, files Files, logger *slog.Logger) (*Tables, error) {
	if files.Students == "" {
		files.Students = DefaultFiles.Students
	}
	if files.Courses == "" {
		files.Courses = DefaultFiles.Courses
	}
	if files.Enrollments == "" {
		files.Enrollments = DefaultFiles.Enrollments
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, store.NewIOError("data_dir", "create", dir, err)
	}

	t := &Tables{
		Students:    NewStudentTable(filepath.Join(dir, files.Students), logger),
		Courses:     NewCourseTable(filepath.Join(dir, files.Courses), logger),
		Enrollments: NewEnrollmentTable(filepath.Join(dir, files.Enrollments), logger),
	}

	for _, ensure := range []func() error{t.Students.Ensure, t.Courses.Ensure, t.Enrollments.Ensure} {
		if err := ensure(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
