package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"recordaccel/pkg/domain"
)

// MongoSampleStore implements SampleStore on a MongoDB collection.
type MongoSampleStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongoSampleStore connects to MongoDB, verifies the connection, and
// ensures the (userId, date) index the read paths rely on.
func NewMongoSampleStore(ctx context.Context, uri, database, collection string) (*MongoSampleStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	col := client.Database(database).Collection(collection)
	index := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	}
	if _, err := col.Indexes().CreateOne(ctx, index); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure sample index: %w", err)
	}
	return &MongoSampleStore{client: client, col: col}, nil
}

// InsertSamples writes the batch with a single InsertMany.
func (s *MongoSampleStore) InsertSamples(ctx context.Context, samples []domain.Sample) error {
	if len(samples) == 0 {
		return nil
	}
	docs := make([]any, 0, len(samples))
	for _, sample := range samples {
		docs = append(docs, sample)
	}
	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert samples: %w", err)
	}
	return nil
}

// ListByUser returns every sample for a user in store order.
func (s *MongoSampleStore) ListByUser(ctx context.Context, userID string) ([]domain.Sample, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

// ListByUserInRange returns samples with timestamp in [start, end).
func (s *MongoSampleStore) ListByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Sample, error) {
	return s.find(ctx, bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": start, "$lt": end},
	})
}

func (s *MongoSampleStore) find(ctx context.Context, filter bson.M) ([]domain.Sample, error) {
	cur, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find samples: %w", err)
	}
	defer cur.Close(ctx)
	samples := []domain.Sample{}
	if err := cur.All(ctx, &samples); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	return samples, nil
}

// ListDistinctDays groups the user's samples by UTC calendar day and returns
// the sorted day strings. No matching samples yields an empty slice.
func (s *MongoSampleStore) ListDistinctDays(ctx context.Context, userID string) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
			{Key: "format", Value: "%Y-%m-%d"},
			{Key: "date", Value: "$date"},
			{Key: "timezone", Value: "UTC"},
		}}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate days: %w", err)
	}
	defer cur.Close(ctx)
	var groups []struct {
		Day string `bson:"_id"`
	}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode day groups: %w", err)
	}
	days := make([]string, 0, len(groups))
	for _, group := range groups {
		days = append(days, group.Day)
	}
	return days, nil
}

// Close disconnects the underlying client.
func (s *MongoSampleStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
