package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/platform/logger"
	"github.com/phrazzld/rollcall/internal/store"
	"github.com/phrazzld/rollcall/internal/testutils"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestOpenCreatesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	tables, err := Open(dir, Files{Courses: "classes.csv"}, logger.Discard())
	require.NoError(t, err)

	for _, name := range []string{"students.csv", "classes.csv", "enrollments.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.Zero(t, info.Size())
	}
	assert.Equal(t, filepath.Join(dir, "classes.csv"), tables.Courses.Path())
}

func TestOpenKeepsExistingContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "students.csv"), "s1,Ada,ada@example.com\n")

	tables, err := Open(dir, DefaultFiles, logger.Discard())
	require.NoError(t, err)

	students, err := tables.Students.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestStudentRoundTrip(t *testing.T) {
	ctx := context.Background()
	table := NewStudentTable(filepath.Join(t.TempDir(), "students.csv"), logger.Discard())

	want := []domain.Student{
		{ID: "s1", Contact: domain.Contact{Name: "Lovelace, Ada", Email: "ada@example.com"}},
		{ID: "s2", Contact: domain.Contact{Name: `Grace "Amazing" Hopper`, Email: "grace@example.com"}},
		{ID: "s3", Contact: domain.Contact{Name: "Alan Turing", Email: "alan@example.com"}},
	}
	for _, s := range want {
		require.NoError(t, table.Append(ctx, s))
	}

	got, err := table.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	content := testutils.ReadFile(t, table.Path())
	assert.Contains(t, content, `s1,"Lovelace, Ada",ada@example.com`)
	assert.Contains(t, content, `s2,"Grace ""Amazing"" Hopper",grace@example.com`)
	assert.Contains(t, content, "s3,Alan Turing,alan@example.com\n")
}

func TestCourseRoundTrip(t *testing.T) {
	ctx := context.Background()
	table := NewCourseTable(filepath.Join(t.TempDir(), "courses.csv"), logger.Discard())

	want := []domain.Course{
		{ID: "c1", Name: "Algorithms, Part I", Capacity: 30},
		{ID: "c2", Name: "Compilers", Capacity: 2},
	}
	require.NoError(t, table.RewriteAll(ctx, want))

	got, err := table.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "c1,\"Algorithms, Part I\",30\nc2,Compilers,2\n", testutils.ReadFile(t, table.Path()))
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.csv")
	writeFile(t, path, ""+
		"c1,Algorithms,30\n"+
		"\n"+
		"c2,Compilers\n"+
		"c3,Databases,many\n"+
		"c4,Networks,0\n"+
		" , Nameless ,5\n"+
		"  c5 ,  Operating Systems  , 12 \n")

	log, buf := logger.GetTestLogger(t)
	table := NewCourseTable(path, log)

	got, err := table.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Course{
		{ID: "c1", Name: "Algorithms", Capacity: 30},
		{ID: "c5", Name: "Operating Systems", Capacity: 12},
	}, got)

	logger.AssertLogContains(t, buf, "skipping malformed record")
	logger.AssertLogField(t, buf, "line", float64(3))
}

func TestLoadSkipsInvalidEnrollments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.csv")
	writeFile(t, path, "s1,c1\n\"s\n2\",c1\n , c2\n s3 , c3 \n")

	log, buf := logger.GetTestLogger(t)
	table := NewEnrollmentTable(path, log)

	got, err := table.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Enrollment{
		{StudentID: "s1", CourseID: "c1"},
		{StudentID: "s3", CourseID: "c3"},
	}, got)
	logger.AssertLogContains(t, buf, "must not contain line breaks")
	logger.AssertLogContains(t, buf, "student ID cannot be empty")
}

func TestLoadUsesContextLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enrollments.csv")
	writeFile(t, path, "s1\n")

	log, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), log.With("session_id", "abc"))
	table := NewEnrollmentTable(path, logger.Discard())

	got, err := table.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	logger.AssertLogField(t, buf, "session_id", "abc")
}

func TestLoadMissingFile(t *testing.T) {
	table := NewStudentTable(filepath.Join(t.TempDir(), "absent.csv"), logger.Discard())

	got, err := table.LoadAll(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendAfterFileWithoutTrailingNewline(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "enrollments.csv")
	writeFile(t, path, "s1,c1")

	table := NewEnrollmentTable(path, logger.Discard())
	require.NoError(t, table.Append(ctx, domain.Enrollment{StudentID: "s2", CourseID: "c1"}))

	assert.Equal(t, "s1,c1\ns2,c1\n", testutils.ReadFile(t, path))
}

func TestAppendRejectsInvalidKey(t *testing.T) {
	ctx := context.Background()
	table := NewEnrollmentTable(filepath.Join(t.TempDir(), "enrollments.csv"), logger.Discard())

	err := table.Append(ctx, domain.Enrollment{StudentID: "s1"})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	err = table.RewriteAll(ctx, []domain.Enrollment{{StudentID: "s1", CourseID: "c\n1"}})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestDeleteMatching(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "enrollments.csv")
	writeFile(t, path, "s1,c1\ns2,c1\ns1,c2\n")
	table := NewEnrollmentTable(path, logger.Discard())

	removed, err := table.DeleteMatching(ctx, domain.ForStudent("s1"))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "s2,c1\n", testutils.ReadFile(t, path))

	removed, err = table.DeleteMatching(ctx, domain.ForStudent("nobody"))
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should not remain")
}

func TestIOErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A directory in place of the file makes every operation fail.
	path := filepath.Join(dir, "students.csv")
	require.NoError(t, os.Mkdir(path, 0o755))
	table := NewStudentTable(path, logger.Discard())

	_, err := table.LoadAll(ctx)
	assert.True(t, store.IsIOError(err), "LoadAll: %v", err)

	err = table.Append(ctx, domain.Student{ID: "s1", Contact: domain.Contact{Name: "Ada", Email: "ada@example.com"}})
	assert.True(t, store.IsIOError(err), "Append: %v", err)

	err = table.RewriteAll(ctx, nil)
	assert.True(t, store.IsIOError(err), "RewriteAll: %v", err)
}
