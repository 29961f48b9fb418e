package store

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIOError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrIO",
			err:      ErrIO,
			expected: true,
		},
		{
			name:     "wrapped ErrIO",
			err:      fmt.Errorf("saving student: %w", ErrIO),
			expected: true,
		},
		{
			name:     "NewIOError",
			err:      NewIOError("student", "append", "students.csv", fs.ErrPermission),
			expected: true,
		},
		{
			name:     "malformed record",
			err:      ErrMalformedRecord,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIOError(tt.err); got != tt.expected {
				t.Errorf("IsIOError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("course", "load", "bad capacity", ErrMalformedRecord)

		assert.Equal(t, "load operation on course failed: bad capacity: malformed record", err.Error())
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("course", "load", "bad capacity", nil)

		assert.Equal(t, "load operation on course failed: bad capacity", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("io error keeps os error reachable", func(t *testing.T) {
		err := NewIOError("enrollment", "rewrite", "enrollments.csv", fs.ErrPermission)

		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, fs.ErrPermission)

		var se *StoreError
		assert.True(t, errors.As(err, &se))
		assert.Equal(t, "enrollment", se.Entity)
		assert.Equal(t, "rewrite", se.Operation)
	})
}
