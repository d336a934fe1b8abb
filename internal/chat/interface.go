package chat

import (
	"context"

	"travel-assistant/internal/model"
)

// UseCase is the Session API offered to transports.
type UseCase interface {
	// ProcessQuery answers text within the session and returns the updated history.
	ProcessQuery(ctx context.Context, sessionID, text string) (Answer, error)
	// ClearHistory empties the session.
	ClearHistory(ctx context.Context, sessionID string) error
	// History returns the stored turns of the session.
	History(ctx context.Context, sessionID string) ([]model.Turn, error)
}
