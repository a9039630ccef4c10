package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jessig1/life-goals-gateway/internal/core/domain"
	"github.com/jessig1/life-goals-gateway/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.SessionStore = (*SessionStore)(nil)

const (
	// Key prefix for Redis
	sessionPrefix = "session:"

	// sessionTTL is the rolling lifetime of a browser session. Every
	// write refreshes it; an untouched session eventually expires with
	// nothing worse than a forced re-login.
	sessionTTL = 7 * 24 * time.Hour
)

// SessionStore implements driven.SessionStore using Redis.
// Each browser session is one hash with a rolling TTL.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed SessionStore
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	val, err := s.client.HGet(ctx, sessionPrefix+sessionID, key).Result()
	if err == redis.Nil {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session value: %w", err)
	}
	return val, nil
}

// Set writes a value for the session and refreshes the session TTL.
func (s *SessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	pipe := s.client.Pipeline()
	pipe.HSet(ctx, sessionPrefix+sessionID, key, value)
	pipe.Expire(ctx, sessionPrefix+sessionID, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session value: %w", err)
	}
	return nil
}

// Delete removes a key from the session. Missing keys are a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID, key string) error {
	if err := s.client.HDel(ctx, sessionPrefix+sessionID, key).Err(); err != nil {
		return fmt.Errorf("failed to delete session value: %w", err)
	}
	return nil
}

// Destroy removes the whole session.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// Ping checks the Redis connection for the health endpoint.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
