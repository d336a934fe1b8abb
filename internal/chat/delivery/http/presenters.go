package http

import (
	"strings"

	"github.com/google/uuid"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

// sessionID returns the requested session, minting one for a new conversation.
func (r chatReq) sessionID() string {
	if r.SessionID != "" {
		return r.SessionID
	}
	return uuid.NewString()
}

// --- Response DTOs ---

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func newTurnsResp(turns []model.Turn) []turnResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{Role: string(t.Role), Content: t.Content}
	}
	return out
}

type chatResp struct {
	SessionID string     `json:"session_id"`
	Answer    string     `json:"answer"`
	History   []turnResp `json:"history"`
}

func newChatResp(sessionID string, ans chat.Answer) chatResp {
	return chatResp{
		SessionID: sessionID,
		Answer:    ans.FinalAnswer,
		History:   newTurnsResp(ans.History),
	}
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	History   []turnResp `json:"history"`
}

type clearResp struct {
	Cleared bool `json:"cleared"`
}
