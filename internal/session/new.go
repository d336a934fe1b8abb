package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"travel-assistant/config"
	"travel-assistant/internal/metrics"
	"travel-assistant/pkg/log"
)

// New builds the Store selected by cfg.Session.Backend.
// The returned close func releases backend resources and is never nil.
func New(ctx context.Context, cfg *config.Config, l log.Logger, m *metrics.Metrics) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Session.Backend {
	case "", BackendMemory:
		l.Infof(ctx, "%s: in-memory sessions (max=%d, ttl=%s)", LogPrefixMemory, cfg.Session.MaxSessions, cfg.Session.TTL)
		return NewMemory(cfg.Session.MaxSessions, cfg.Session.TTL, m), noop, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("%s: ping %s: %w", LogPrefixRedis, cfg.Redis.Address, err)
		}
		l.Infof(ctx, "%s: connected to %s (ttl=%s)", LogPrefixRedis, cfg.Redis.Address, cfg.Session.TTL)
		return NewRedis(client, cfg.Session.TTL, l), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Session.Backend)
	}
}
