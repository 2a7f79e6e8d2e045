package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infracache "bookapp-backend/internal/infrastructure/cache"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(infracache.NewRedisCacheFromClient(client), ttl), mr
}

func TestIssueAndResolve(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	token, err := store.Issue(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, found, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, userID, got)
}

func TestResolveUnknownToken(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, found, err := store.Resolve(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionExpires(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Issue(ctx, uuid.New())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, found, "session should be gone after TTL")
}

func TestTouchExtendsSession(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Issue(ctx, uuid.New())
	require.NoError(t, err)

	mr.FastForward(30 * time.Second)
	require.NoError(t, store.Touch(ctx, token))
	mr.FastForward(45 * time.Second)

	_, found, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, found, "touched session should outlive the original TTL")
}

func TestRevoke(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Issue(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, token))

	_, found, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, found)

	// Revoking again is a no-op.
	require.NoError(t, store.Revoke(ctx, token))
}
