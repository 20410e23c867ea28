package app

import (
	"context"
	"fmt"
	"time"

	"recordaccel/internal/util"
	"recordaccel/pkg/domain"
	"recordaccel/pkg/store"
)

const (
	dayFormat = "2006-01-02"

	// DefaultPageSize is the number of days per page of the day list.
	DefaultPageSize = 7
)

// Config wires required dependencies for the core application.
type Config struct {
	Samples  store.SampleStore
	Registry store.UserRegistry
	PageSize int
}

// App is the core application service tying sample storage and the user
// registry together.
type App struct {
	samples  store.SampleStore
	registry store.UserRegistry
	pageSize int
}

// New constructs the application with injected stores.
func New(cfg Config) (*App, error) {
	if cfg.Samples == nil {
		return nil, fmt.Errorf("sample store required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("user registry required")
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &App{
		samples:  cfg.Samples,
		registry: cfg.Registry,
		pageSize: pageSize,
	}, nil
}

// Ingest validates a batch, bulk-inserts the valid samples, and records user
// membership. The insert is awaited; a batch with no valid record fails with
// ErrNoValidSamples and writes nothing. All records of one batch belong to
// the user of its first valid record.
func (a *App) Ingest(ctx context.Context, candidates []Candidate) (domain.IngestResult, error) {
	samples, rejected := ConvertBatch(candidates)
	if len(samples) == 0 {
		return domain.IngestResult{Rejected: rejected}, ErrNoValidSamples
	}
	userID := samples[0].UserID
	if err := a.samples.InsertSamples(ctx, samples); err != nil {
		return domain.IngestResult{}, fmt.Errorf("persist batch: %w", err)
	}
	// Membership is a derived index; the samples above are already durable,
	// so a failed mark must not fail the ingest. The next batch retries it.
	if err := a.registry.MarkRegistered(ctx, userID); err != nil {
		util.LoggerFromContext(ctx).Warn("mark registered failed", "user_id", userID, "err", err)
	}
	return domain.IngestResult{
		UserID:   userID,
		Accepted: len(samples),
		Rejected: rejected,
	}, nil
}

// QueryDay returns the user's samples within the given UTC calendar day.
// The window is [00:00:00, 23:59:59) of that day; the final second of the
// day is not included. An empty result is not an error.
func (a *App) QueryDay(ctx context.Context, userID, date string) ([]domain.Sample, error) {
	day, err := time.Parse(dayFormat, date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start := day.UTC()
	end := start.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	samples, err := a.samples.ListByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("query day: %w", err)
	}
	return samples, nil
}

// ListAll returns every sample recorded for a user.
func (a *App) ListAll(ctx context.Context, userID string) ([]domain.Sample, error) {
	samples, err := a.samples.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	return samples, nil
}

// ListDays returns one page of the sorted distinct calendar days with data
// for a user. Out-of-range pages yield a shorter or empty slice.
func (a *App) ListDays(ctx context.Context, userID string, page int) ([]string, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}
	days, err := a.samples.ListDistinctDays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	start := page * a.pageSize
	if start >= len(days) {
		return []string{}, nil
	}
	end := start + a.pageSize
	if end > len(days) {
		end = len(days)
	}
	return days[start:end], nil
}

// IsRegistered reports whether the user has ever submitted samples.
func (a *App) IsRegistered(ctx context.Context, userID string) (bool, error) {
	ok, err := a.registry.IsRegistered(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return ok, nil
}
