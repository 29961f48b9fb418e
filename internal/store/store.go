package store

import (
	"context"

	"github.com/phrazzld/rollcall/internal/domain"
)

// Table is the contract shared by every record kind: a flat, ordered list of
// records that can be loaded whole, appended to, rewritten or filtered.
type Table[T any] interface {
	// LoadAll returns every decodable record in stored order.
	// Records that cannot be decoded are skipped, not returned as errors.
	LoadAll(ctx context.Context) ([]T, error)

	// Append adds one record to the end of the table.
	Append(ctx context.Context, record T) error

	// RewriteAll replaces the whole table with records.
	RewriteAll(ctx context.Context, records []T) error

	// DeleteMatching removes every record for which match returns true and
	// returns the number removed.
	DeleteMatching(ctx context.Context, match func(T) bool) (int, error)
}

// StudentStore persists students. Only ID and contact details are stored;
// course references are derived from the enrollment table.
type StudentStore interface {
	Table[domain.Student]
}

// CourseStore persists courses. Only ID, name and capacity are stored;
// student references are derived from the enrollment table.
type CourseStore interface {
	Table[domain.Course]
}

// EnrollmentStore persists (student, course) pairs.
type EnrollmentStore interface {
	Table[domain.Enrollment]
}
