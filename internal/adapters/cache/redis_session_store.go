package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/skillstream/lms-backend/internal/domain"
)

// RedisSessionStore holds the JSON user snapshot keyed by user ID. Entries
// carry no TTL; the access token's expiry bounds their use and logout
// removes them explicitly.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

func (s *RedisSessionStore) Put(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(user.UserID), payload, 0).Err()
}

// Get returns (nil, nil) on a missing entry so callers can tell "no
// session" apart from a store failure.
func (s *RedisSessionStore) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	raw, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &user, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}
