package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/rollcall/internal/events"
)

// MockTable mocks the store.Table interface for any record type.
type MockTable[T any] struct {
	mock.Mock
}

func (m *MockTable[T]) LoadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockTable[T]) Append(ctx context.Context, record T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTable[T]) RewriteAll(ctx context.Context, records []T) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockTable[T]) DeleteMatching(ctx context.Context, match func(T) bool) (int, error) {
	args := m.Called(ctx, match)
	return args.Int(0), args.Error(1)
}

// recordingHandler collects the type of every event it receives.
type recordingHandler struct {
	types []string
	last  *events.Event
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *events.Event) error {
	h.types = append(h.types, event.Type)
	h.last = event
	return nil
}
