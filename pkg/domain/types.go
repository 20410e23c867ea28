package domain

import "time"

// Sample is one accelerometer reading tagged with a user id and UTC timestamp.
// Samples are immutable once created; the service only inserts and reads them.
type Sample struct {
	ID     string    `json:"id" bson:"_id,omitempty"`
	UserID string    `json:"userId" bson:"userId"`
	Date   time.Time `json:"date" bson:"date"`
	Value  float64   `json:"accData" bson:"accData"`
}

// IngestResult acknowledges a completed ingest batch.
type IngestResult struct {
	UserID   string `json:"userId"`
	Accepted int    `json:"accepted"`
	Rejected int    `json:"rejected"`
}
