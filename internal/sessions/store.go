package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mjones-dev/playlist-manager/internal/logger"
)

const keyPrefix = "session:"

// Store is a session-id to account-id lookup table backed by Redis.
// Entries expire automatically after the configured TTL; deleting an
// entry invalidates the session immediately (logout).
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a session store with the given TTL.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save binds a new session id to an account id and returns the session id.
func (s *Store) Save(ctx context.Context, accountID uuid.UUID) (uuid.UUID, error) {
	sessionID := uuid.New()

	err := s.client.Set(ctx, keyPrefix+sessionID.String(), accountID.String(), s.ttl).Err()

	logger.Log.Infow(
		"op", "session save",
		"session_id", sessionID,
		"account_id", accountID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return sessionID, nil
}

// Get resolves a session id to its account id.
// Returns nil without error when the session is absent or expired.
func (s *Store) Get(ctx context.Context, sessionID uuid.UUID) (*uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session lookup failed", "session_id", sessionID, "error", err)
		return nil, err
	}

	accountID, err := uuid.Parse(val)
	if err != nil {
		return nil, err
	}
	return &accountID, nil
}

// Delete invalidates a session. Deleting a session that no longer
// exists is not an error, which makes logout idempotent.
func (s *Store) Delete(ctx context.Context, sessionID uuid.UUID) error {
	err := s.client.Del(ctx, keyPrefix+sessionID.String()).Err()

	logger.Log.Infow(
		"op", "session delete",
		"session_id", sessionID,
		"error", err,
	)

	return err
}
