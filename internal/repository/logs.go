// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// LogsRepository provides methods for log operations at the repository level.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{
		collection: db.Logs,
	}
}

// Create inserts a new log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple log entries in bulk.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		if entry.ID.IsZero() {
			entry.ID = primitive.NewObjectID()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// buildLogFilter translates query options to a MongoDB filter.
func buildLogFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}

	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = bson.M{"$regex": opts.Path, "$options": "i"}
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}

// Query queries log entries with filters, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, buildLogFilter(opts), findOpts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := []*model.LogEntry{}
	for cursor.Next(ctx) {
		var entry model.LogEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, cursor.Err()
}

// Count returns the number of log entries matching the filters.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildLogFilter(opts))
}
