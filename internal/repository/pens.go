// Package repository provides data access for pens.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// PenDocument represents a pen as stored in MongoDB.
type PenDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         primitive.ObjectID `bson:"user_id"`
	Size           float64            `bson:"size"`
	PurchaseDate   time.Time          `bson:"purchase_date"`
	ExpirationDate time.Time          `bson:"expiration_date"`
	Notes          string             `bson:"notes,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// ToModel converts the document to the domain model.
func (d *PenDocument) ToModel() model.Pen {
	return model.Pen{
		ID:             d.ID.Hex(),
		Size:           d.Size,
		PurchaseDate:   d.PurchaseDate,
		ExpirationDate: d.ExpirationDate,
		Notes:          d.Notes,
	}
}

// PensRepository provides methods for pen operations.
type PensRepository struct {
	collection *mongo.Collection
}

// NewPensRepository creates a new pens repository.
func NewPensRepository(db *MongoDB) *PensRepository {
	return &PensRepository{collection: db.Pens}
}

// Create inserts a new pen for the given user.
func (r *PensRepository) Create(ctx context.Context, userID primitive.ObjectID, size float64, purchaseDate, expirationDate time.Time, notes string) (*model.Pen, error) {
	doc := PenDocument{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		Size:           size,
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
		Notes:          notes,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	pen := doc.ToModel()
	return &pen, nil
}

// GetByID returns a single pen owned by the user.
func (r *PensRepository) GetByID(ctx context.Context, userID primitive.ObjectID, id string) (*model.Pen, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var doc PenDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	pen := doc.ToModel()
	return &pen, nil
}

// List returns all pens owned by the user, oldest purchase first.
func (r *PensRepository) List(ctx context.Context, userID primitive.ObjectID) ([]model.Pen, error) {
	opts := options.Find().SetSort(bson.D{{Key: "purchase_date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	pens := []model.Pen{}
	for cursor.Next(ctx) {
		var doc PenDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		pens = append(pens, doc.ToModel())
	}
	return pens, cursor.Err()
}

// Delete removes a pen owned by the user. The caller is responsible for
// deleting the pen's doses first.
func (r *PensRepository) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
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
