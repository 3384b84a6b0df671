package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcraft/catalog-server/internal/repository"
)

func newTestSessionStore(t *testing.T) (*AdminSessionStore, *repository.MemoryAdminSessionRepository, *time.Time) {
	t.Helper()

	repo := repository.NewMemoryAdminSessionRepository()
	store := NewAdminSessionStore(repo)

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, repo, &now
}

func TestAdminSessionStore_Create(t *testing.T) {
	store, _, now := newTestSessionStore(t)
	ctx := context.Background()

	session, err := store.Create(ctx)
	require.NoError(t, err)

	t.Run("token has 256 bits of entropy hex-encoded", func(t *testing.T) {
		assert.Len(t, session.SessionID, 64)
	})

	t.Run("expiry is 24 hours after creation", func(t *testing.T) {
		assert.Equal(t, now.Add(24*time.Hour), session.ExpiresAt)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		other, err := store.Create(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, session.SessionID, other.SessionID)
	})
}

func TestAdminSessionStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the session while unexpired", func(t *testing.T) {
		store, _, now := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		*now = now.Add(24*time.Hour - time.Second)

		got, err := store.Get(ctx, session.SessionID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, session.SessionID, got.SessionID)
	})

	t.Run("returns nil for an unknown token", func(t *testing.T) {
		store, _, _ := newTestSessionStore(t)

		got, err := store.Get(ctx, "no-such-token")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("evicts an expired session on first read", func(t *testing.T) {
		store, repo, now := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		*now = now.Add(24 * time.Hour)

		got, err := store.Get(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 0, repo.Len(), "expired row should be deleted as a side effect")
	})

	t.Run("exactly at expiry counts as expired", func(t *testing.T) {
		store, repo, now := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		*now = session.ExpiresAt

		got, err := store.Get(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("expired token never authorizes again", func(t *testing.T) {
		store, _, now := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		*now = now.Add(25 * time.Hour)

		for i := 0; i < 3; i++ {
			got, err := store.Get(ctx, session.SessionID)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})
}

func TestAdminSessionStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the session", func(t *testing.T) {
		store, repo, _ := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, session.SessionID))
		assert.Equal(t, 0, repo.Len())

		got, err := store.Get(ctx, session.SessionID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store, repo, _ := newTestSessionStore(t)
		session, err := store.Create(ctx)
		require.NoError(t, err)

		assert.NoError(t, store.Delete(ctx, session.SessionID))
		assert.NoError(t, store.Delete(ctx, session.SessionID))
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("deleting an absent token is not an error", func(t *testing.T) {
		store, _, _ := newTestSessionStore(t)
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}
