//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Askwho/mounjaro-hub/internal/circuitbreaker"
)

func TestPenSizesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPenSizesRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("create pen sizes", func(t *testing.T) {
		sizes := []float64{2.5, 5, 7.5, 10}
		config, err := repo.Create(ctx, sizes, "test-user")
		require.NoError(t, err)
		assert.NotNil(t, config)
		assert.Equal(t, sizes, config.Sizes)
		assert.True(t, config.Active)
		assert.Equal(t, 1, config.Version)
		assert.Equal(t, "test-user", config.CreatedBy)
		assert.False(t, config.ID.IsZero())
	})

	t.Run("get active after create", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, []float64{2.5, 5, 7.5, 10}, active.Sizes)
		assert.True(t, active.Active)
	})

	t.Run("create new active deactivates old", func(t *testing.T) {
		oldActive, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, oldActive)

		newSizes := []float64{2.5, 5, 7.5, 10, 12.5, 15}
		newConfig, err := repo.Create(ctx, newSizes, "test-user-2")
		require.NoError(t, err)
		assert.NotNil(t, newConfig)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, newSizes, active.Sizes)
		assert.NotEqual(t, oldActive.ID, active.ID)
	})

	t.Run("update pen sizes", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		updatedSizes := []float64{5, 10, 15}
		updatedConfig, err := repo.Update(ctx, active.ID, updatedSizes, "test-updater")
		require.NoError(t, err)
		assert.Equal(t, updatedSizes, updatedConfig.Sizes)
		assert.Equal(t, active.Version+1, updatedConfig.Version)
	})

	t.Run("list all configs", func(t *testing.T) {
		configs, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(configs), 2)
	})

	t.Run("list with limit", func(t *testing.T) {
		configs, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, len(configs))
	})
}

func TestPenSizesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewPenSizesRepository(db)
	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewPenSizesRepositoryWithCircuitBreaker(repo, cb)

	t.Run("circuit breaker allows successful operations", func(t *testing.T) {
		config, err := wrappedRepo.Create(ctx, []float64{2.5, 5}, "test")
		require.NoError(t, err)
		assert.NotNil(t, config)

		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("circuit breaker stats stay healthy", func(t *testing.T) {
		stats := cb.GetStats()
		assert.Equal(t, "closed", stats.State)
		assert.True(t, stats.IsHealthy)
	})

	t.Run("wrapper exposes its breaker", func(t *testing.T) {
		assert.Equal(t, cb, wrappedRepo.GetCircuitBreaker())
	})

	t.Run("update through the breaker", func(t *testing.T) {
		active, err := wrappedRepo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		updated, err := wrappedRepo.Update(ctx, active.ID, []float64{5, 10}, "test-updater")
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 10}, updated.Sizes)
	})

	t.Run("list through the breaker", func(t *testing.T) {
		configs, err := wrappedRepo.List(ctx, 5)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(configs), 1)
	})
}
