package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"recordaccel/pkg/domain"
)

const dayFormat = "2006-01-02"

// MemorySampleStore keeps samples in-process, in insertion order. It backs
// tests and local development without a MongoDB instance.
type MemorySampleStore struct {
	mu      sync.RWMutex
	samples []domain.Sample
}

// NewMemorySampleStore initializes an empty in-memory sample store.
func NewMemorySampleStore() *MemorySampleStore {
	return &MemorySampleStore{}
}

// InsertSamples appends the whole batch.
func (m *MemorySampleStore) InsertSamples(_ context.Context, samples []domain.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.samples = append(m.samples, samples...)
	return nil
}

// ListByUser returns every sample for a user in insertion order.
func (m *MemorySampleStore) ListByUser(_ context.Context, userID string) ([]domain.Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := []domain.Sample{}
	for _, sample := range m.samples {
		if sample.UserID == userID {
			res = append(res, sample)
		}
	}
	return res, nil
}

// ListByUserInRange returns the user's samples with timestamp in [start, end).
func (m *MemorySampleStore) ListByUserInRange(_ context.Context, userID string, start, end time.Time) ([]domain.Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := []domain.Sample{}
	for _, sample := range m.samples {
		if sample.UserID != userID {
			continue
		}
		if sample.Date.Before(start) || !sample.Date.Before(end) {
			continue
		}
		res = append(res, sample)
	}
	return res, nil
}

// ListDistinctDays returns the sorted UTC calendar days with data for a user.
func (m *MemorySampleStore) ListDistinctDays(_ context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, sample := range m.samples {
		if sample.UserID == userID {
			seen[sample.Date.UTC().Format(dayFormat)] = struct{}{}
		}
	}
	days := make([]string, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

// Close is a no-op for the in-memory store.
func (m *MemorySampleStore) Close(context.Context) error {
	return nil
}
