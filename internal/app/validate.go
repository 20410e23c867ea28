package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"recordaccel/pkg/domain"
)

// Candidate is one untrusted ingest record before validation. Fields are
// typed loosely so a wrong-typed value is rejected instead of failing the
// whole batch decode.
type Candidate struct {
	UserID  any `json:"userId"`
	Date    any `json:"date"`
	AccData any `json:"accData"`
}

// Timestamps are accepted in any of these layouts, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DecodeBatch parses an ingest body that holds either a single record or an
// array of records into an ordered candidate sequence.
func DecodeBatch(body []byte) ([]Candidate, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}
	if trimmed[0] == '[' {
		var candidates []Candidate
		if err := json.Unmarshal(trimmed, &candidates); err != nil {
			return nil, fmt.Errorf("decode batch: %w", err)
		}
		return candidates, nil
	}
	var candidate Candidate
	if err := json.Unmarshal(trimmed, &candidate); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return []Candidate{candidate}, nil
}

// Convert validates one candidate. A candidate is valid iff the user id is a
// non-empty string, the date parses to an instant, and the value is a finite
// number. Valid candidates become Samples with UTC timestamps and fresh ids.
func Convert(c Candidate) (domain.Sample, bool) {
	userID, ok := c.UserID.(string)
	if !ok || userID == "" {
		return domain.Sample{}, false
	}
	raw, ok := c.Date.(string)
	if !ok {
		return domain.Sample{}, false
	}
	ts, ok := parseTimestamp(raw)
	if !ok {
		return domain.Sample{}, false
	}
	value, ok := c.AccData.(float64)
	if !ok || math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.Sample{}, false
	}
	return domain.Sample{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   ts.UTC(),
		Value:  value,
	}, true
}

// ConvertBatch filters a candidate sequence down to its valid Samples,
// preserving order, and counts the records it dropped.
func ConvertBatch(candidates []Candidate) ([]domain.Sample, int) {
	samples := make([]domain.Sample, 0, len(candidates))
	rejected := 0
	for _, candidate := range candidates {
		sample, ok := Convert(candidate)
		if !ok {
			rejected++
			continue
		}
		samples = append(samples, sample)
	}
	return samples, rejected
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
