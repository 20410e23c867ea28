package app

import "errors"

var (
	// ErrNoValidSamples indicates an ingest batch without a single usable record.
	ErrNoValidSamples = errors.New("no valid samples")
	// ErrInvalidDate indicates a day parameter that is not a calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidPage indicates a negative page number.
	ErrInvalidPage = errors.New("invalid page number")
)
