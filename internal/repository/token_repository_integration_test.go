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

func TestTokenRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewTokenRepository(db.Database)
	userID := primitive.NewObjectID()

	t.Run("create and find token", func(t *testing.T) {
		token := &model.Token{
			UserID:    userID,
			Token:     "refresh-token-1",
			Type:      "refresh",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		require.NoError(t, repo.Create(ctx, token))
		assert.False(t, token.ID.IsZero())

		found, err := repo.FindByToken(ctx, "refresh-token-1")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, userID, found.UserID)
		assert.Equal(t, "refresh", found.Type)
	})

	t.Run("find missing token returns nil", func(t *testing.T) {
		found, err := repo.FindByToken(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("blacklist check", func(t *testing.T) {
		blacklisted, err := repo.IsBlacklisted(ctx, "refresh-token-1")
		require.NoError(t, err)
		assert.False(t, blacklisted)

		require.NoError(t, repo.Create(ctx, &model.Token{
			UserID:    userID,
			Token:     "revoked-access-token",
			Type:      "blacklist",
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		blacklisted, err = repo.IsBlacklisted(ctx, "revoked-access-token")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("delete by token", func(t *testing.T) {
		require.NoError(t, repo.DeleteByToken(ctx, "refresh-token-1"))

		found, err := repo.FindByToken(ctx, "refresh-token-1")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("delete by user and type", func(t *testing.T) {
		for _, tok := range []string{"r1", "r2"} {
			require.NoError(t, repo.Create(ctx, &model.Token{
				UserID:    userID,
				Token:     tok,
				Type:      "refresh",
				ExpiresAt: time.Now().Add(time.Hour),
			}))
		}

		require.NoError(t, repo.DeleteByUserID(ctx, userID, "refresh"))

		found, err := repo.FindByToken(ctx, "r1")
		require.NoError(t, err)
		assert.Nil(t, found)

		// Tokens of other types survive.
		blacklisted, err := repo.IsBlacklisted(ctx, "revoked-access-token")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("cleanup expired", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Token{
			UserID:    userID,
			Token:     "stale-token",
			Type:      "refresh",
			ExpiresAt: time.Now().Add(-time.Hour),
		}))

		require.NoError(t, repo.CleanupExpired(ctx))

		found, err := repo.FindByToken(ctx, "stale-token")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
