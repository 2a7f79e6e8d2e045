package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookapp-backend/pkg/cache"
)

const keyPrefix = "session:"

// Store keeps login sessions in the cache layer as opaque token -> user id
// mappings with a TTL. The token itself carries no information; a stolen
// database dump cannot forge one.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewStore builds a session store. ttl is the server-side session lifetime.
func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Issue creates a new session for userID and returns the opaque token.
func (s *Store) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.cache.Set(ctx, keyPrefix+token, userID.String(), s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve maps a token back to a user id. found = false means the session
// is unknown or expired.
func (s *Store) Resolve(ctx context.Context, token string) (uuid.UUID, bool, error) {
	var raw string
	found, err := s.cache.Get(ctx, keyPrefix+token, &raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("resolve session: %w", err)
	}
	if !found {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		// Corrupt entry; treat as no session rather than failing the request.
		_ = s.cache.Delete(ctx, keyPrefix+token)
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

// Touch extends a live session by the configured TTL (sliding expiry).
func (s *Store) Touch(ctx context.Context, token string) error {
	return s.cache.Expire(ctx, keyPrefix+token, s.ttl)
}

// Revoke deletes a session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, keyPrefix+token)
}
