package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/mocks"
	"github.com/phrazzld/rollcall/internal/service"
	"github.com/phrazzld/rollcall/internal/store"
)

func TestHandlers_StorageFailure(t *testing.T) {
	storageErr := &service.EnrollmentServiceError{Operation: "enroll", Message: "failed to save enrollment", Err: store.ErrIO}
	svc := &mocks.MockEnrollmentService{DefaultError: storageErr}

	out := runSession(t, svc, script("3", "A", "X", "0"))

	assert.Contains(t, out, "Error: Could not save changes. See the log for details.")
	assert.NotContains(t, out, "Enrollment successful.")
}

func TestUpdateCourse_BlankCapacityKeepsCurrent(t *testing.T) {
	var gotName string
	gotCapacity := -1
	svc := &mocks.MockEnrollmentService{
		UpdateCourseFn: func(_ context.Context, id, name string, capacity int) (*domain.Course, error) {
			gotName, gotCapacity = name, capacity
			return &domain.Course{ID: id, Name: "Algebra", Capacity: 30}, nil
		},
	}

	out := runSession(t, svc, script("8", "X", "", "", "0"))

	assert.Empty(t, gotName)
	assert.Zero(t, gotCapacity)
	assert.Contains(t, out, "Course updated successfully: Algebra (0/30)")
}

func TestDeleteCourse_DeclinedNeverCallsService(t *testing.T) {
	called := false
	svc := &mocks.MockEnrollmentService{
		DeleteCourseFn: func(context.Context, string) error {
			called = true
			return nil
		},
	}

	out := runSession(t, svc, script("12", "X", "", "0"))

	assert.False(t, called)
	assert.Contains(t, out, "Deletion cancelled.")
}

func TestStudentsInCourse_Empty(t *testing.T) {
	svc := &mocks.MockEnrollmentService{Course: &domain.Course{ID: "X", Name: "Algebra", Capacity: 5}}

	out := runSession(t, svc, script("4", "X", "0"))

	assert.Contains(t, out, "No students are enrolled in Algebra.")
}
