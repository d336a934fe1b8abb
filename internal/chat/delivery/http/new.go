package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/chat"
	"travel-assistant/pkg/log"
)

// Handler is the HTTP delivery of the Session API.
type Handler interface {
	Chat(c *gin.Context)
	History(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

var _ Handler = (*handler)(nil)

// New creates the chat HTTP handler.
func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
