package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/repository"
)

// SnapshotsService captures daily copies of the derived metrics so history
// can be charted without recomputing past states from mutable dose data.
type SnapshotsService interface {
	// Capture computes current metrics and upserts one snapshot per pen plus
	// a portfolio snapshot, all keyed by the capture day.
	Capture(ctx context.Context, userID primitive.ObjectID) error
	// PenHistory returns stored pen snapshots in a date range.
	PenHistory(ctx context.Context, userID primitive.ObjectID, penID string, from, to time.Time) ([]repository.PenSnapshotDocument, error)
	// SystemHistory returns stored portfolio snapshots in a date range.
	SystemHistory(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]repository.SystemSnapshotDocument, error)
}

// SnapshotsServiceImpl implements SnapshotsService.
type SnapshotsServiceImpl struct {
	analytics     AnalyticsService
	snapshotsRepo repository.SnapshotsRepositoryInterface
	now           func() time.Time
}

// NewSnapshotsService creates a new snapshots service.
func NewSnapshotsService(analytics AnalyticsService, snapshotsRepo repository.SnapshotsRepositoryInterface) *SnapshotsServiceImpl {
	return &SnapshotsServiceImpl{
		analytics:     analytics,
		snapshotsRepo: snapshotsRepo,
		now:           time.Now,
	}
}

// Capture computes current metrics and upserts one snapshot per pen plus a
// portfolio snapshot. Snapshots are keyed by day, so repeated captures on the
// same day overwrite instead of accumulating.
func (s *SnapshotsServiceImpl) Capture(ctx context.Context, userID primitive.ObjectID) error {
	day := startOfDay(s.now().UTC())

	system, err := s.analytics.SystemMetrics(ctx, userID)
	if err != nil {
		return err
	}

	for _, metric := range system.PenMetrics {
		if err := s.snapshotsRepo.UpsertPenSnapshot(ctx, userID, day, metric); err != nil {
			log.Error().Err(err).Str("pen_id", metric.PenID).Msg("Failed to store pen snapshot")
			return err
		}
	}

	return s.snapshotsRepo.UpsertSystemSnapshot(ctx, userID, day, system)
}

// PenHistory returns stored pen snapshots in a date range.
func (s *SnapshotsServiceImpl) PenHistory(ctx context.Context, userID primitive.ObjectID, penID string, from, to time.Time) ([]repository.PenSnapshotDocument, error) {
	return s.snapshotsRepo.ListPenSnapshots(ctx, userID, penID, from, to)
}

// SystemHistory returns stored portfolio snapshots in a date range.
func (s *SnapshotsServiceImpl) SystemHistory(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]repository.SystemSnapshotDocument, error) {
	return s.snapshotsRepo.ListSystemSnapshots(ctx, userID, from, to)
}
