package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/rollcall/internal/domain"
	"github.com/phrazzld/rollcall/internal/store"
)

func TestNewEnrollmentServiceError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantSame  bool
		wantNil   bool
		wantIsErr error
	}{
		{name: "nil error", err: nil, wantNil: true},
		{name: "sentinel passes through", err: ErrCourseFull, wantSame: true, wantIsErr: ErrCourseFull},
		{
			name:      "wrapped sentinel passes through",
			err:       fmt.Errorf("lookup: %w", ErrStudentNotFound),
			wantSame:  true,
			wantIsErr: ErrStudentNotFound,
		},
		{name: "validation passes through", err: domain.ErrInvalidEmail, wantSame: true, wantIsErr: domain.ErrValidation},
		{name: "storage failure is wrapped", err: store.ErrIO, wantIsErr: store.ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewEnrollmentServiceError("enroll", "failed to save enrollment", tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			if tt.wantSame {
				assert.Same(t, tt.err, got)
			} else {
				var serviceErr *EnrollmentServiceError
				assert.True(t, errors.As(got, &serviceErr))
				assert.Equal(t, "enroll", serviceErr.Operation)
			}
			assert.ErrorIs(t, got, tt.wantIsErr)
		})
	}
}

func TestEnrollmentServiceError_Error(t *testing.T) {
	err := &EnrollmentServiceError{Operation: "drop", Message: "failed to remove enrollment", Err: errors.New("boom")}
	assert.Equal(t, "enrollment service drop failed: failed to remove enrollment: boom", err.Error())

	bare := &EnrollmentServiceError{Operation: "create_service", Message: "student store cannot be nil"}
	assert.Equal(t, "enrollment service create_service failed: student store cannot be nil", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
