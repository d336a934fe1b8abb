package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// RedisStore keeps each history as a JSON array under travel:session:<id>.
// Every Save refreshes the key's TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	l      log.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedis creates a RedisStore on an existing client.
func NewRedis(client redis.UniversalClient, ttl time.Duration, l log.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl, l: l}
}

func key(id string) string {
	return redisKeyPrefix + id
}

func (s *RedisStore) Load(ctx context.Context, id string) ([]model.Turn, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []model.Turn{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: get: %w", LogPrefixRedis, err)
	}

	var turns []model.Turn
	if err := json.Unmarshal(raw, &turns); err != nil {
		s.l.Warnf(ctx, "%s: discarding corrupt history for %s: %v", LogPrefixRedis, id, err)
		return []model.Turn{}, nil
	}
	return model.CloneTurns(turns), nil
}

func (s *RedisStore) Save(ctx context.Context, id string, turns []model.Turn) error {
	if id == "" {
		return ErrEmptySessionID
	}
	raw, err := json.Marshal(model.CloneTurns(turns))
	if err != nil {
		return fmt.Errorf("%s: marshal: %w", LogPrefixRedis, err)
	}
	if err := s.client.Set(ctx, key(id), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: set: %w", LogPrefixRedis, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%s: del: %w", LogPrefixRedis, err)
	}
	return nil
}
