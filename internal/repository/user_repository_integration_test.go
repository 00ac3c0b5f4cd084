//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Askwho/mounjaro-hub/internal/domain/model"
)

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewUserRepository(db.Database)

	user := &model.User{
		Email:    "test@example.com",
		Username: "testuser",
		Password: "hashed-password",
		Name:     "Test User",
		Active:   true,
	}

	t.Run("create user", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.ID.IsZero())
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "testuser", found.Username)
	})

	t.Run("find by email missing returns nil", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find by email for auth includes password", func(t *testing.T) {
		found, err := repo.FindByEmailForAuth(ctx, "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "hashed-password", found.Password)
		assert.True(t, found.Active)
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "testuser")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "test@example.com", found.Email)
	})

	t.Run("update user", func(t *testing.T) {
		user.Name = "Renamed User"
		require.NoError(t, repo.Update(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Renamed User", found.Name)
	})

	t.Run("delete deactivates user", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, user.ID))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.False(t, found.Active)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := &model.User{
			ID:       primitive.NewObjectID(),
			Email:    "test@example.com",
			Username: "otheruser",
			Password: "hash",
			Active:   true,
		}
		err := repo.Create(ctx, dup)
		assert.Error(t, err)
	})
}
