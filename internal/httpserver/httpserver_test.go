package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/internal/chat"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

type stubUseCase struct{}

func (stubUseCase) ProcessQuery(_ context.Context, _, text string) (chat.Answer, error) {
	return chat.Answer{FinalAnswer: "echo: " + text}, nil
}
func (stubUseCase) ClearHistory(context.Context, string) error { return nil }
func (stubUseCase) History(context.Context, string) ([]model.Turn, error) {
	return []model.Turn{}, nil
}

func newServer(t *testing.T, readiness func(context.Context) error) (*HTTPServer, *metrics.Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           "test",
		Environment:    "test",
		Middleware:     middleware.New(log.NewNop(), config.RateLimitConfig{}, m),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Readiness:      readiness,
		ChatUseCase:    stubUseCase{},
	})
	require.NoError(t, err)
	return srv, m
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	assert.Error(t, err)

	_, err = New(nil, Config{Port: 8080, Mode: "test", ChatUseCase: stubUseCase{}})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: "test", ChatUseCase: stubUseCase{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newServer(t, nil)
	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv.Handler(), path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
	}
}

func TestReady_StoreDown(t *testing.T) {
	srv, _ := newServer(t, func(context.Context) error { return errors.New("redis down") })
	w := get(srv.Handler(), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsRoute(t *testing.T) {
	srv, _ := newServer(t, nil)
	get(srv.Handler(), "/health")

	w := get(srv.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "travel_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newServer(t, nil)
	w := get(srv.Handler(), "/live")
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	srv, _ := newServer(t, nil)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
