package http

import (
	"errors"

	"travel-assistant/internal/chat"
)

var (
	errEmptyMessage   = errors.New("請輸入訊息")
	errEmptySessionID = errors.New("session id is required")
)

// mapError translates use-case errors into client errors. ok is false for
// anything the client cannot fix.
func mapError(err error) (clientErr error, ok bool) {
	switch {
	case errors.Is(err, chat.ErrEmptyQuery):
		return errEmptyMessage, true
	case errors.Is(err, chat.ErrEmptySessionID):
		return errEmptySessionID, true
	default:
		return nil, false
	}
}
