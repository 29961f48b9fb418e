package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/rollcall/internal/service"
	"github.com/phrazzld/rollcall/internal/testutils"
)

// execute runs the root command with args and input, returning its output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.WriteDataFiles(t, dir, map[string]string{
		"students.csv":    "A,Ada,ada@example.com\nB,\"Hopper, Grace\",grace@example.com\n",
		"courses.csv":     "Y,Biology,3\nX,Algebra,2\n",
		"enrollments.csv": "A,X\nB,X\nA,Y\n",
	})
	return dir
}

func TestRootCommand_InteractiveSession(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "rollcall.log")

	out, err := execute(t, "1\nA\nAda\nada@example.com\n0\n",
		"--data-dir", dir, "--log-file", logFile, "--log-level", "info")
	require.NoError(t, err)

	assert.Contains(t, out, "Student added successfully.")

	assert.Equal(t, "A,Ada,ada@example.com\n", testutils.ReadFile(t, filepath.Join(dir, "students.csv")))

	logs := testutils.ReadFile(t, logFile)
	assert.Contains(t, logs, "session_id=")
	assert.Contains(t, logs, "event_type=student.added")
	assert.NotContains(t, logs, "ada@example.com")
}

func TestReportCommand_Text(t *testing.T) {
	dir := seedDataDir(t)

	out, err := execute(t, "", "report", "--data-dir", dir, "--log-file", filepath.Join(dir, "rollcall.log"))
	require.NoError(t, err)

	assert.Contains(t, out, "----- Course Enrollment Summary -----")
	assert.Less(t, strings.Index(out, "Course: Algebra (ID: X)"), strings.Index(out, "Course: Biology (ID: Y)"))
	assert.Contains(t, out, "Enrolled: 2/2")
	assert.Contains(t, out, "Students: 2, Courses: 2, Enrollments: 3")
}

func TestReportCommand_YAML(t *testing.T) {
	dir := seedDataDir(t)

	out, err := execute(t, "", "report", "--format", "yaml",
		"--data-dir", dir, "--log-file", filepath.Join(dir, "rollcall.log"))
	require.NoError(t, err)

	var report service.SummaryReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, service.SummaryReport{
		Courses: []service.CourseSummary{
			{ID: "X", Name: "Algebra", Enrolled: 2, Capacity: 2},
			{ID: "Y", Name: "Biology", Enrolled: 1, Capacity: 3},
		},
		TotalStudents:    2,
		TotalCourses:     2,
		TotalEnrollments: 3,
	}, report)
}

func TestReportCommand_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "report", "--format", "xml", "--data-dir", dir)
	assert.ErrorContains(t, err, "unsupported report format")

	_, err = execute(t, "", "report", "--data-dir", dir, "--log-level", "loud")
	assert.ErrorContains(t, err, "failed to load configuration")

	_, err = execute(t, "", "--data-dir", dir, "--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load configuration")
}
