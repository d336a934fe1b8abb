package chat

import "errors"

var (
	ErrEmptyQuery     = errors.New("query text is empty")
	ErrEmptySessionID = errors.New("session id is empty")
)
