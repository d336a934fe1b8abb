package http

import (
	"github.com/gin-gonic/gin"

	"travel-assistant/pkg/response"
)

// Chat godoc
// @Summary     Ask the travel assistant
// @Description Answers a travel question within a session. A missing session_id starts a new session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Question"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sessionID := req.sessionID()
	ans, err := h.uc.ProcessQuery(ctx, sessionID, req.Message)
	if err != nil {
		h.fail(c, "uc.ProcessQuery", err)
		return
	}

	response.OK(c, newChatResp(sessionID, ans))
}

// History godoc
// @Summary     Get session history
// @Description Returns the stored conversation turns of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	turns, err := h.uc.History(ctx, id)
	if err != nil {
		h.fail(c, "uc.History", err)
		return
	}

	response.OK(c, historyResp{SessionID: id, History: newTurnsResp(turns)})
}

// ClearHistory godoc
// @Summary     Clear session history
// @Description Removes every stored turn of a session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ClearHistory(ctx, id); err != nil {
		h.fail(c, "uc.ClearHistory", err)
		return
	}

	response.OK(c, clearResp{Cleared: true})
}

func (h *handler) fail(c *gin.Context, op string, err error) {
	if clientErr, ok := mapError(err); ok {
		response.Error(c, clientErr, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	response.InternalError(c, err)
}
