package app

import (
	"math"
	"testing"
	"time"
)

func TestConvertAcceptsValidCandidate(t *testing.T) {
	sample, ok := Convert(Candidate{
		UserID:  "u1",
		Date:    "2024-03-01T10:00:00Z",
		AccData: 1.5,
	})
	if !ok {
		t.Fatalf("expected candidate accepted")
	}
	if sample.UserID != "u1" {
		t.Fatalf("userId = %q, want %q", sample.UserID, "u1")
	}
	if sample.Value != 1.5 {
		t.Fatalf("value = %v, want 1.5", sample.Value)
	}
	want := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	if !sample.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", sample.Date, want)
	}
	if sample.ID == "" {
		t.Fatalf("expected generated sample id")
	}
}

func TestConvertNormalizesToUTC(t *testing.T) {
	sample, ok := Convert(Candidate{
		UserID:  "u1",
		Date:    "2024-03-01T23:30:00+02:00",
		AccData: 0.25,
	})
	if !ok {
		t.Fatalf("expected candidate accepted")
	}
	want := time.Date(2024, 3, 1, 21, 30, 0, 0, time.UTC)
	if !sample.Date.Equal(want) || sample.Date.Location() != time.UTC {
		t.Fatalf("date = %v, want %v in UTC", sample.Date, want)
	}
}

func TestConvertRejectsInvalidCandidates(t *testing.T) {
	cases := map[string]Candidate{
		"missing userId":    {Date: "2024-03-01T10:00:00Z", AccData: 1.0},
		"empty userId":      {UserID: "", Date: "2024-03-01T10:00:00Z", AccData: 1.0},
		"numeric userId":    {UserID: 42.0, Date: "2024-03-01T10:00:00Z", AccData: 1.0},
		"missing date":      {UserID: "u1", AccData: 1.0},
		"unparseable date":  {UserID: "u1", Date: "yesterday", AccData: 1.0},
		"non-string date":   {UserID: "u1", Date: 20240301.0, AccData: 1.0},
		"missing value":     {UserID: "u1", Date: "2024-03-01T10:00:00Z"},
		"string value":      {UserID: "u1", Date: "2024-03-01T10:00:00Z", AccData: "1.5"},
		"NaN value":         {UserID: "u1", Date: "2024-03-01T10:00:00Z", AccData: math.NaN()},
		"infinite value":    {UserID: "u1", Date: "2024-03-01T10:00:00Z", AccData: math.Inf(1)},
	}
	for name, candidate := range cases {
		if _, ok := Convert(candidate); ok {
			t.Fatalf("%s: expected rejection", name)
		}
	}
}

func TestDecodeBatchSingleObject(t *testing.T) {
	candidates, err := DecodeBatch([]byte(`{"userId":"u1","date":"2024-03-01T10:00:00Z","accData":1.5}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
}

func TestDecodeBatchArray(t *testing.T) {
	candidates, err := DecodeBatch([]byte(`[
		{"userId":"u1","date":"2024-03-01T10:00:00Z","accData":1.5},
		{"userId":"u1","date":"bogus","accData":2.5}
	]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}

	samples, rejected := ConvertBatch(candidates)
	if len(samples) != 1 || rejected != 1 {
		t.Fatalf("expected 1 accepted / 1 rejected, got %d / %d", len(samples), rejected)
	}
}

func TestDecodeBatchRejectsMalformedJSON(t *testing.T) {
	for _, body := range []string{"", "   ", "{not json", "[{]"} {
		if _, err := DecodeBatch([]byte(body)); err == nil {
			t.Fatalf("expected decode error for %q", body)
		}
	}
}

func TestConvertBatchPreservesOrder(t *testing.T) {
	samples, rejected := ConvertBatch([]Candidate{
		{UserID: "u1", Date: "2024-03-01T10:00:00Z", AccData: 1.0},
		{UserID: "u1", Date: "nope", AccData: 2.0},
		{UserID: "u1", Date: "2024-03-01T11:00:00Z", AccData: 3.0},
	})
	if rejected != 1 {
		t.Fatalf("rejected = %d, want 1", rejected)
	}
	if len(samples) != 2 || samples[0].Value != 1.0 || samples[1].Value != 3.0 {
		t.Fatalf("unexpected samples: %+v", samples)
	}
}
