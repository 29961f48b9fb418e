package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/rollcall/internal/service"
)

const summaryRule = "--------------------------------------"

// WriteSummary prints the course enrollment summary as plain text.
func WriteSummary(w io.Writer, report *service.SummaryReport) error {
	var b strings.Builder

	b.WriteString("----- Course Enrollment Summary -----\n")
	if len(report.Courses) == 0 {
		b.WriteString("No courses found.\n")
	}
	for _, c := range report.Courses {
		fmt.Fprintf(&b, "Course: %s (ID: %s)\n", c.Name, c.ID)
		fmt.Fprintf(&b, "Enrolled: %d/%d\n", c.Enrolled, c.Capacity)
		b.WriteString(summaryRule + "\n")
	}
	fmt.Fprintf(&b, "Students: %d, Courses: %d, Enrollments: %d\n",
		report.TotalStudents, report.TotalCourses, report.TotalEnrollments)

	_, err := io.WriteString(w, b.String())
	return err
}
