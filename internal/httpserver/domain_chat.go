package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "travel-assistant/internal/chat/delivery/http"
)

// setupChatDomain registers the Session API routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, srv.mw)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)

	// Registers /api/v1/chat and /api/v1/sessions/:id/history
	chatHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
