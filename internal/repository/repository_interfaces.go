// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// PensRepositoryInterface defines the interface for pen repository operations.
type PensRepositoryInterface interface {
	Create(ctx context.Context, userID primitive.ObjectID, size float64, purchaseDate, expirationDate time.Time, notes string) (*model.Pen, error)
	GetByID(ctx context.Context, userID primitive.ObjectID, id string) (*model.Pen, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]model.Pen, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
}

// DosesRepositoryInterface defines the interface for dose repository operations.
type DosesRepositoryInterface interface {
	Create(ctx context.Context, userID primitive.ObjectID, penID string, date time.Time, mg float64, isCompleted bool) (*model.Dose, error)
	Update(ctx context.Context, userID primitive.ObjectID, id string, update DoseUpdate) (*model.Dose, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]model.Dose, error)
	ListByPen(ctx context.Context, userID primitive.ObjectID, penID string) ([]model.Dose, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
	DeleteByPen(ctx context.Context, userID primitive.ObjectID, penID string) (int64, error)
	DeleteAllPlanned(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

// WeightsRepositoryInterface defines the interface for weight repository operations.
type WeightsRepositoryInterface interface {
	Create(ctx context.Context, userID primitive.ObjectID, date time.Time, weightKg float64, notes string) (*model.Weight, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]model.Weight, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
}

// SnapshotsRepositoryInterface defines the interface for snapshot repository operations.
type SnapshotsRepositoryInterface interface {
	UpsertPenSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metric model.PenMetric) error
	UpsertSystemSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metrics model.SystemMetrics) error
	ListPenSnapshots(ctx context.Context, userID primitive.ObjectID, penID string, from, to time.Time) ([]PenSnapshotDocument, error)
	ListSystemSnapshots(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]SystemSnapshotDocument, error)
}

// PenSizesRepositoryInterface defines the interface for pen sizes repository operations.
type PenSizesRepositoryInterface interface {
	GetActive(ctx context.Context) (*PenSizeConfig, error)
	Create(ctx context.Context, sizes []float64, createdBy string) (*PenSizeConfig, error)
	Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*PenSizeConfig, error)
	List(ctx context.Context, limit int) ([]PenSizeConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
