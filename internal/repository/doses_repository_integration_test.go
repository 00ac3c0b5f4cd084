//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDosesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	pensRepo := NewPensRepository(db)
	repo := NewDosesRepository(db)
	userID := primitive.NilObjectID

	purchase := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	expiration := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	pen, err := pensRepo.Create(ctx, userID, 10, purchase, expiration, "")
	require.NoError(t, err)

	day := func(d int) time.Time {
		return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
	}

	var doseID string

	t.Run("create dose", func(t *testing.T) {
		dose, err := repo.Create(ctx, userID, pen.ID, day(1), 2.5, true)
		require.NoError(t, err)
		assert.Equal(t, pen.ID, dose.PenID)
		assert.Equal(t, 2.5, dose.Mg)
		assert.True(t, dose.IsCompleted)
		doseID = dose.ID
	})

	t.Run("create against malformed pen id", func(t *testing.T) {
		_, err := repo.Create(ctx, userID, "bogus", day(1), 2.5, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list ordered by date then id", func(t *testing.T) {
		_, err := repo.Create(ctx, userID, pen.ID, day(8), 2.5, false)
		require.NoError(t, err)
		_, err = repo.Create(ctx, userID, pen.ID, day(4), 2.5, true)
		require.NoError(t, err)

		doses, err := repo.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, doses, 3)
		assert.True(t, doses[0].Date.Equal(day(1)))
		assert.True(t, doses[1].Date.Equal(day(4)))
		assert.True(t, doses[2].Date.Equal(day(8)))
	})

	t.Run("list by pen", func(t *testing.T) {
		doses, err := repo.ListByPen(ctx, userID, pen.ID)
		require.NoError(t, err)
		assert.Len(t, doses, 3)
	})

	t.Run("update preserves identity", func(t *testing.T) {
		mg := 5.0
		completed := false
		updated, err := repo.Update(ctx, userID, doseID, DoseUpdate{Mg: &mg, IsCompleted: &completed})
		require.NoError(t, err)
		assert.Equal(t, doseID, updated.ID)
		assert.Equal(t, 5.0, updated.Mg)
		assert.False(t, updated.IsCompleted)
	})

	t.Run("update missing dose", func(t *testing.T) {
		mg := 5.0
		_, err := repo.Update(ctx, userID, primitive.NewObjectID().Hex(), DoseUpdate{Mg: &mg})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete all planned", func(t *testing.T) {
		deleted, err := repo.DeleteAllPlanned(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)

		doses, err := repo.List(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, doses, 1)
		assert.True(t, doses[0].IsCompleted)
	})

	t.Run("delete by pen", func(t *testing.T) {
		deleted, err := repo.DeleteByPen(ctx, userID, pen.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		doses, err := repo.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, doses)
	})
}
