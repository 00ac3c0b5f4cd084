// Package repository provides data access for doses.
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

// DoseDocument represents a dose as stored in MongoDB.
type DoseDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	PenID       primitive.ObjectID `bson:"pen_id"`
	Date        time.Time          `bson:"date"`
	Mg          float64            `bson:"mg"`
	IsCompleted bool               `bson:"is_completed"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// ToModel converts the document to the domain model.
func (d *DoseDocument) ToModel() model.Dose {
	return model.Dose{
		ID:          d.ID.Hex(),
		PenID:       d.PenID.Hex(),
		Date:        d.Date,
		Mg:          d.Mg,
		IsCompleted: d.IsCompleted,
	}
}

// DoseUpdate carries the editable fields of a dose. Nil fields are unchanged.
type DoseUpdate struct {
	PenID       *string
	Date        *time.Time
	Mg          *float64
	IsCompleted *bool
}

// DosesRepository provides methods for dose operations.
type DosesRepository struct {
	collection *mongo.Collection
}

// NewDosesRepository creates a new doses repository.
func NewDosesRepository(db *MongoDB) *DosesRepository {
	return &DosesRepository{collection: db.Doses}
}

// Create inserts a new dose for the given user.
func (r *DosesRepository) Create(ctx context.Context, userID primitive.ObjectID, penID string, date time.Time, mg float64, isCompleted bool) (*model.Dose, error) {
	penOID, err := primitive.ObjectIDFromHex(penID)
	if err != nil {
		return nil, ErrNotFound
	}

	doc := DoseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		PenID:       penOID,
		Date:        date,
		Mg:          mg,
		IsCompleted: isCompleted,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	dose := doc.ToModel()
	return &dose, nil
}

// Update edits a dose in place, preserving its identity.
func (r *DosesRepository) Update(ctx context.Context, userID primitive.ObjectID, id string, update DoseUpdate) (*model.Dose, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if update.PenID != nil {
		penOID, err := primitive.ObjectIDFromHex(*update.PenID)
		if err != nil {
			return nil, ErrNotFound
		}
		set["pen_id"] = penOID
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Mg != nil {
		set["mg"] = *update.Mg
	}
	if update.IsCompleted != nil {
		set["is_completed"] = *update.IsCompleted
	}

	var doc DoseDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	dose := doc.ToModel()
	return &dose, nil
}

// List returns all doses for the user, ordered by date then id.
func (r *DosesRepository) List(ctx context.Context, userID primitive.ObjectID) ([]model.Dose, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// ListByPen returns the doses recorded against one pen.
func (r *DosesRepository) ListByPen(ctx context.Context, userID primitive.ObjectID, penID string) ([]model.Dose, error) {
	penOID, err := primitive.ObjectIDFromHex(penID)
	if err != nil {
		return nil, ErrNotFound
	}
	return r.find(ctx, bson.M{"user_id": userID, "pen_id": penOID})
}

func (r *DosesRepository) find(ctx context.Context, filter bson.M) ([]model.Dose, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	doses := []model.Dose{}
	for cursor.Next(ctx) {
		var doc DoseDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		doses = append(doses, doc.ToModel())
	}
	return doses, cursor.Err()
}

// Delete removes a single dose owned by the user.
func (r *DosesRepository) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
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

// DeleteByPen removes every dose recorded against a pen and returns the count.
func (r *DosesRepository) DeleteByPen(ctx context.Context, userID primitive.ObjectID, penID string) (int64, error) {
	penOID, err := primitive.ObjectIDFromHex(penID)
	if err != nil {
		return 0, ErrNotFound
	}

	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "pen_id": penOID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// DeleteAllPlanned removes every planned dose for the user and returns the count.
func (r *DosesRepository) DeleteAllPlanned(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "is_completed": false})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
