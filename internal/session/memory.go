package session

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
)

// MemoryStore keeps histories in process, bounded by count and idle TTL.
type MemoryStore struct {
	cache   *expirable.LRU[string, []model.Turn]
	metrics *metrics.Metrics
}

var _ Store = (*MemoryStore)(nil)

// NewMemory creates a MemoryStore. m may be nil.
func NewMemory(maxSessions int, ttl time.Duration, m *metrics.Metrics) *MemoryStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		cache:   expirable.NewLRU[string, []model.Turn](maxSessions, nil, ttl),
		metrics: m,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) ([]model.Turn, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}
	turns, ok := s.cache.Get(id)
	if !ok {
		return []model.Turn{}, nil
	}
	return model.CloneTurns(turns), nil
}

func (s *MemoryStore) Save(_ context.Context, id string, turns []model.Turn) error {
	if id == "" {
		return ErrEmptySessionID
	}
	s.cache.Add(id, model.CloneTurns(turns))
	s.report()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	s.cache.Remove(id)
	s.report()
	return nil
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	return s.cache.Len()
}

func (s *MemoryStore) report() {
	s.metrics.SetActiveSessions(s.cache.Len())
}
