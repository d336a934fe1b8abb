package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/internal/middleware"
)

// RegisterRoutes maps the chat and session endpoints under rg. Every route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id/history", mw.RateLimit(), h.History)
		sessions.DELETE("/:id/history", mw.RateLimit(), h.ClearHistory)
	}
}
