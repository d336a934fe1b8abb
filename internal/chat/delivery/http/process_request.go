package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSessionID reads the :id path parameter.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errEmptySessionID
	}
	return id, nil
}
