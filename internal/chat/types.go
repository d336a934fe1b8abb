package chat

import "travel-assistant/internal/model"

// Answer is the result of one processed query.
type Answer struct {
	FinalAnswer string
	// History is a copy of the session's turns after the query.
	History []model.Turn
}
