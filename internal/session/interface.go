package session

import (
	"context"

	"travel-assistant/internal/model"
)

// Store persists conversation history per session.
// A session that was never saved, or has expired, loads as an empty history.
type Store interface {
	Load(ctx context.Context, id string) ([]model.Turn, error)
	Save(ctx context.Context, id string, turns []model.Turn) error
	Delete(ctx context.Context, id string) error
}
