//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

func TestSnapshotsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewSnapshotsRepository(db)
	userID := primitive.NilObjectID

	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("upsert pen snapshot replaces same day", func(t *testing.T) {
		metric := model.PenMetric{PenID: "pen-1", Remaining: 40}
		require.NoError(t, repo.UpsertPenSnapshot(ctx, userID, day(1), metric))

		metric.Remaining = 35
		require.NoError(t, repo.UpsertPenSnapshot(ctx, userID, day(1), metric))

		snapshots, err := repo.ListPenSnapshots(ctx, userID, "pen-1", time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, 35.0, snapshots[0].Metric.Remaining)
	})

	t.Run("list pen snapshots in range", func(t *testing.T) {
		for d := 2; d <= 4; d++ {
			metric := model.PenMetric{PenID: "pen-1", Remaining: float64(40 - d)}
			require.NoError(t, repo.UpsertPenSnapshot(ctx, userID, day(d), metric))
		}

		snapshots, err := repo.ListPenSnapshots(ctx, userID, "pen-1", day(2), day(3))
		require.NoError(t, err)
		require.Len(t, snapshots, 2)
		assert.True(t, snapshots[0].Date.Equal(day(2)))
		assert.True(t, snapshots[1].Date.Equal(day(3)))
	})

	t.Run("pen snapshots isolated by pen", func(t *testing.T) {
		snapshots, err := repo.ListPenSnapshots(ctx, userID, "pen-2", time.Time{}, time.Time{})
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("upsert system snapshot replaces same day", func(t *testing.T) {
		metrics := model.SystemMetrics{TotalPens: 2, TotalRemaining: 80}
		require.NoError(t, repo.UpsertSystemSnapshot(ctx, userID, day(1), metrics))

		metrics.TotalRemaining = 75
		require.NoError(t, repo.UpsertSystemSnapshot(ctx, userID, day(1), metrics))

		snapshots, err := repo.ListSystemSnapshots(ctx, userID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, 75.0, snapshots[0].Metrics.TotalRemaining)
	})

	t.Run("system snapshots sorted oldest first", func(t *testing.T) {
		require.NoError(t, repo.UpsertSystemSnapshot(ctx, userID, day(3), model.SystemMetrics{TotalPens: 2}))
		require.NoError(t, repo.UpsertSystemSnapshot(ctx, userID, day(2), model.SystemMetrics{TotalPens: 2}))

		snapshots, err := repo.ListSystemSnapshots(ctx, userID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Len(t, snapshots, 3)
		assert.True(t, snapshots[0].Date.Equal(day(1)))
		assert.True(t, snapshots[2].Date.Equal(day(3)))
	})
}
