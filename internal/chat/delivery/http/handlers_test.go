package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/internal/chat"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

type fakeUseCase struct {
	answer     chat.Answer
	err        error
	turns      []model.Turn
	gotSession string
	gotText    string
	cleared    string
}

func (f *fakeUseCase) ProcessQuery(_ context.Context, sessionID, text string) (chat.Answer, error) {
	f.gotSession = sessionID
	f.gotText = text
	return f.answer, f.err
}

func (f *fakeUseCase) ClearHistory(_ context.Context, sessionID string) error {
	f.cleared = sessionID
	return f.err
}

func (f *fakeUseCase) History(context.Context, string) ([]model.Turn, error) {
	return f.turns, f.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(uc chat.UseCase, rl config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), rl, nil)
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func serve(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestChat(t *testing.T) {
	uc := &fakeUseCase{answer: chat.Answer{
		FinalAnswer: "國道一號目前順暢",
		History: []model.Turn{
			{Role: model.RoleUser, Content: "國道一號塞車嗎"},
			{Role: model.RoleAssistant, Content: "國道一號目前順暢"},
		},
	}}
	r := newRouter(uc, config.RateLimitConfig{})

	w, env := serve(r, http.MethodPost, "/api/v1/chat", `{"session_id":"s1","message":"國道一號塞車嗎"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got chatResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, "國道一號目前順暢", got.Answer)
	assert.Equal(t, []turnResp{
		{Role: "user", Content: "國道一號塞車嗎"},
		{Role: "assistant", Content: "國道一號目前順暢"},
	}, got.History)
	assert.Equal(t, "s1", uc.gotSession)
	assert.Equal(t, "國道一號塞車嗎", uc.gotText)
}

func TestChat_MintsSessionID(t *testing.T) {
	uc := &fakeUseCase{answer: chat.Answer{FinalAnswer: "ok"}}
	r := newRouter(uc, config.RateLimitConfig{})

	w, env := serve(r, http.MethodPost, "/api/v1/chat", `{"message":"你好"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got chatResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.NotEmpty(t, got.SessionID)
	assert.Equal(t, got.SessionID, uc.gotSession)
	assert.NotNil(t, got.History)
}

func TestChat_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{name: "empty message", body: `{"session_id":"s1","message":""}`, msg: "請輸入訊息"},
		{name: "blank message", body: `{"message":"   "}`, msg: "請輸入訊息"},
		{name: "invalid json", body: `{"message":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			r := newRouter(uc, config.RateLimitConfig{})

			w, env := serve(r, http.MethodPost, "/api/v1/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, env.Message)
			}
			assert.Empty(t, uc.gotText)
		})
	}
}

func TestChat_UseCaseErrors(t *testing.T) {
	uc := &fakeUseCase{err: chat.ErrEmptyQuery}
	w, env := serve(newRouter(uc, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "請輸入訊息", env.Message)

	uc = &fakeUseCase{err: errors.New("boom")}
	w, env = serve(newRouter(uc, config.RateLimitConfig{}), http.MethodPost, "/api/v1/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, env.Message, "boom")
}

func TestChat_RateLimited(t *testing.T) {
	uc := &fakeUseCase{answer: chat.Answer{FinalAnswer: "ok"}}
	r := newRouter(uc, config.RateLimitConfig{Enabled: true, RequestsPerMin: 1})

	w, _ := serve(r, http.MethodPost, "/api/v1/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = serve(r, http.MethodPost, "/api/v1/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestHistory(t *testing.T) {
	uc := &fakeUseCase{turns: []model.Turn{{Role: model.RoleUser, Content: "你好"}}}
	w, env := serve(newRouter(uc, config.RateLimitConfig{}), http.MethodGet, "/api/v1/sessions/s1/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got historyResp
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, []turnResp{{Role: "user", Content: "你好"}}, got.History)
}

func TestClearHistory(t *testing.T) {
	uc := &fakeUseCase{}
	w, env := serve(newRouter(uc, config.RateLimitConfig{}), http.MethodDelete, "/api/v1/sessions/s1/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", uc.cleared)
	assert.JSONEq(t, `{"cleared":true}`, string(env.Data))

	uc = &fakeUseCase{err: errors.New("redis down")}
	w, _ = serve(newRouter(uc, config.RateLimitConfig{}), http.MethodDelete, "/api/v1/sessions/s1/history", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
