// Package repository provides data access for metric snapshots.
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

// PenSnapshotDocument is a per-pen metric report frozen on a given day.
// Snapshots are write-once per (user, pen, day): saving again replaces the
// day's document.
type PenSnapshotDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"-"`
	PenID     string             `bson:"pen_id" json:"pen_id"`
	Date      time.Time          `bson:"date" json:"date"`
	Metric    model.PenMetric    `bson:"metric" json:"metric"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// SystemSnapshotDocument is a portfolio-wide report frozen on a given day.
type SystemSnapshotDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID  `bson:"user_id" json:"-"`
	Date      time.Time           `bson:"date" json:"date"`
	Metrics   model.SystemMetrics `bson:"metrics" json:"metrics"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}

// SnapshotsRepository provides methods for snapshot operations.
type SnapshotsRepository struct {
	penSnapshots    *mongo.Collection
	systemSnapshots *mongo.Collection
}

// NewSnapshotsRepository creates a new snapshots repository.
func NewSnapshotsRepository(db *MongoDB) *SnapshotsRepository {
	return &SnapshotsRepository{
		penSnapshots:    db.PenSnapshots,
		systemSnapshots: db.SystemSnapshots,
	}
}

// UpsertPenSnapshot stores a pen's metric report for the given day,
// replacing any snapshot already taken that day.
func (r *SnapshotsRepository) UpsertPenSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metric model.PenMetric) error {
	filter := bson.M{"user_id": userID, "pen_id": metric.PenID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"metric":     metric,
			"created_at": time.Now(),
		},
	}

	_, err := r.penSnapshots.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// UpsertSystemSnapshot stores the portfolio report for the given day,
// replacing any snapshot already taken that day.
func (r *SnapshotsRepository) UpsertSystemSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metrics model.SystemMetrics) error {
	filter := bson.M{"user_id": userID, "date": date}
	update := bson.M{
		"$set": bson.M{
			"metrics":    metrics,
			"created_at": time.Now(),
		},
	}

	_, err := r.systemSnapshots.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// ListPenSnapshots returns a pen's snapshots in the inclusive date range,
// oldest first. Zero range bounds are open-ended.
func (r *SnapshotsRepository) ListPenSnapshots(ctx context.Context, userID primitive.ObjectID, penID string, from, to time.Time) ([]PenSnapshotDocument, error) {
	filter := bson.M{"user_id": userID, "pen_id": penID}
	if dateFilter := rangeFilter(from, to); dateFilter != nil {
		filter["date"] = dateFilter
	}

	return findSnapshots[PenSnapshotDocument](ctx, r.penSnapshots, filter)
}

// ListSystemSnapshots returns the portfolio snapshots in the inclusive date
// range, oldest first. Zero range bounds are open-ended.
func (r *SnapshotsRepository) ListSystemSnapshots(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]SystemSnapshotDocument, error) {
	filter := bson.M{"user_id": userID}
	if dateFilter := rangeFilter(from, to); dateFilter != nil {
		filter["date"] = dateFilter
	}

	return findSnapshots[SystemSnapshotDocument](ctx, r.systemSnapshots, filter)
}

func rangeFilter(from, to time.Time) bson.M {
	f := bson.M{}
	if !from.IsZero() {
		f["$gte"] = from
	}
	if !to.IsZero() {
		f["$lte"] = to
	}
	if len(f) == 0 {
		return nil
	}
	return f
}

func findSnapshots[T any](ctx context.Context, collection *mongo.Collection, filter bson.M) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []T{}
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}
