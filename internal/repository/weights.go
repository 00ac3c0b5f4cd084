// Package repository provides data access for weight entries.
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

// WeightDocument represents a body weight entry as stored in MongoDB.
type WeightDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Date      time.Time          `bson:"date"`
	WeightKg  float64            `bson:"weight_kg"`
	Notes     string             `bson:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ToModel converts the document to the domain model.
func (d *WeightDocument) ToModel() model.Weight {
	return model.Weight{
		ID:       d.ID.Hex(),
		Date:     d.Date,
		WeightKg: d.WeightKg,
		Notes:    d.Notes,
	}
}

// WeightsRepository provides methods for weight entry operations.
type WeightsRepository struct {
	collection *mongo.Collection
}

// NewWeightsRepository creates a new weights repository.
func NewWeightsRepository(db *MongoDB) *WeightsRepository {
	return &WeightsRepository{collection: db.Weights}
}

// Create inserts a new weight entry for the given user.
func (r *WeightsRepository) Create(ctx context.Context, userID primitive.ObjectID, date time.Time, weightKg float64, notes string) (*model.Weight, error) {
	doc := WeightDocument{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		WeightKg:  weightKg,
		Notes:     notes,
		CreatedAt: time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	weight := doc.ToModel()
	return &weight, nil
}

// List returns all weight entries for the user, ordered by date then id.
func (r *WeightsRepository) List(ctx context.Context, userID primitive.ObjectID) ([]model.Weight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	weights := []model.Weight{}
	for cursor.Next(ctx) {
		var doc WeightDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		weights = append(weights, doc.ToModel())
	}
	return weights, cursor.Err()
}

// Delete removes a weight entry owned by the user.
func (r *WeightsRepository) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
