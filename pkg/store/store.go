package store

import (
	"context"
	"time"

	"recordaccel/pkg/domain"
)

// SampleStore defines persistence operations for accelerometer samples.
// Samples are write-once; there are no update or delete operations.
type SampleStore interface {
	// InsertSamples performs one bulk insert of the whole batch.
	InsertSamples(ctx context.Context, samples []domain.Sample) error
	// ListByUser returns every sample recorded for a user, in store order.
	ListByUser(ctx context.Context, userID string) ([]domain.Sample, error)
	// ListByUserInRange returns samples whose timestamp falls in [start, end).
	ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Sample, error)
	// ListDistinctDays returns the sorted set of UTC calendar days
	// ("YYYY-MM-DD") for which the user has at least one sample. A user with
	// no samples yields an empty slice, not an error.
	ListDistinctDays(ctx context.Context, userID string) ([]string, error)
	Close(ctx context.Context) error
}

// UserRegistry records which user ids have ever submitted samples. Entries
// are created at most once per user and never removed.
type UserRegistry interface {
	// MarkRegistered is idempotent; repeated calls for the same id are no-ops.
	MarkRegistered(ctx context.Context, userID string) error
	IsRegistered(ctx context.Context, userID string) (bool, error)
	Close() error
}
