// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/circuitbreaker"
	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

// PenSizesRepositoryWithCircuitBreaker wraps PenSizesRepository with circuit breaker protection.
type PenSizesRepositoryWithCircuitBreaker struct {
	repo           *PenSizesRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewPenSizesRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewPenSizesRepositoryWithCircuitBreaker(repo *PenSizesRepository, cb *circuitbreaker.CircuitBreaker) *PenSizesRepositoryWithCircuitBreaker {
	return &PenSizesRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active pen size configuration with circuit breaker protection.
// When the circuit is open it returns nil so callers fall back to the default sizes.
func (r *PenSizesRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*PenSizeConfig, error) {
	var result *PenSizeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Create creates a new pen size configuration with circuit breaker protection.
func (r *PenSizesRepositoryWithCircuitBreaker) Create(ctx context.Context, sizes []float64, createdBy string) (*PenSizeConfig, error) {
	var result *PenSizeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, sizes, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates an existing pen size configuration with circuit breaker protection.
func (r *PenSizesRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, sizes []float64, updatedBy string) (*PenSizeConfig, error) {
	var result *PenSizeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, sizes, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns pen size configurations with circuit breaker protection.
func (r *PenSizesRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]PenSizeConfig, error) {
	var result []PenSizeConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *PenSizesRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If the circuit is open the entry is dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If the circuit is open the entries are dropped; logging is non-critical.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	var result []*model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SnapshotsRepositoryWithCircuitBreaker wraps SnapshotsRepository with circuit breaker protection.
// Unlike logs, snapshot failures surface to the caller: a dropped snapshot is lost history.
type SnapshotsRepositoryWithCircuitBreaker struct {
	repo           *SnapshotsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSnapshotsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSnapshotsRepositoryWithCircuitBreaker(repo *SnapshotsRepository, cb *circuitbreaker.CircuitBreaker) *SnapshotsRepositoryWithCircuitBreaker {
	return &SnapshotsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// UpsertPenSnapshot stores a pen snapshot with circuit breaker protection.
func (r *SnapshotsRepositoryWithCircuitBreaker) UpsertPenSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metric model.PenMetric) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpsertPenSnapshot(ctx, userID, date, metric)
	})
}

// UpsertSystemSnapshot stores a portfolio snapshot with circuit breaker protection.
func (r *SnapshotsRepositoryWithCircuitBreaker) UpsertSystemSnapshot(ctx context.Context, userID primitive.ObjectID, date time.Time, metrics model.SystemMetrics) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.UpsertSystemSnapshot(ctx, userID, date, metrics)
	})
}

// ListPenSnapshots retrieves pen snapshots with circuit breaker protection.
func (r *SnapshotsRepositoryWithCircuitBreaker) ListPenSnapshots(ctx context.Context, userID primitive.ObjectID, penID string, from, to time.Time) ([]PenSnapshotDocument, error) {
	var result []PenSnapshotDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListPenSnapshots(ctx, userID, penID, from, to)
		return cbErr
	})
	return result, err
}

// ListSystemSnapshots retrieves portfolio snapshots with circuit breaker protection.
func (r *SnapshotsRepositoryWithCircuitBreaker) ListSystemSnapshots(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]SystemSnapshotDocument, error) {
	var result []SystemSnapshotDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListSystemSnapshots(ctx, userID, from, to)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SnapshotsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
