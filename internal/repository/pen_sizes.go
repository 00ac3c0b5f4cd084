// Package repository provides data access for pen size configurations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PenSizeConfig represents a pen size configuration document. The active
// configuration defines which nominal sizes new pens may be created with.
type PenSizeConfig struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Sizes     []float64              `bson:"sizes" json:"sizes"`
	Active    bool                   `bson:"active" json:"active"`
	Version   int                    `bson:"version" json:"version"`
	CreatedAt time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// PenSizesRepository provides methods for pen size configuration operations.
type PenSizesRepository struct {
	collection *mongo.Collection
}

// NewPenSizesRepository creates a new pen sizes repository.
func NewPenSizesRepository(db *MongoDB) *PenSizesRepository {
	return &PenSizesRepository{
		collection: db.PenSizes,
	}
}

// GetActive returns the active pen size configuration.
func (r *PenSizesRepository) GetActive(ctx context.Context) (*PenSizeConfig, error) {
	var config PenSizeConfig
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active config found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Create creates a new pen size configuration and deactivates the previous one.
func (r *PenSizesRepository) Create(ctx context.Context, sizes []float64, createdBy string) (*PenSizeConfig, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	config := PenSizeConfig{
		ID:        primitive.NewObjectID(),
		Sizes:     sizes,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
		Metadata:  make(map[string]interface{}),
	}

	if _, err := r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Update updates an existing pen size configuration.
func (r *PenSizesRepository) Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*PenSizeConfig, error) {
	var current PenSizeConfig
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"sizes":      sizes,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var config PenSizeConfig
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&config)
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// List returns pen size configurations, newest first.
func (r *PenSizesRepository) List(ctx context.Context, limit int) ([]PenSizeConfig, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	configs := []PenSizeConfig{}
	for cursor.Next(ctx) {
		var config PenSizeConfig
		if err := cursor.Decode(&config); err != nil {
			return nil, err
		}
		configs = append(configs, config)
	}
	return configs, cursor.Err()
}
