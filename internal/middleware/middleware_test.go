package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"travel-assistant/config"
	"travel-assistant/internal/metrics"
	"travel-assistant/pkg/log"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func do(r http.Handler, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1}, nil)
	r := newEngine(mw.RateLimit())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(r, nil).Code)
	}
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	// 20 per minute gives a burst of 2.
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 20}, nil)
	r := newEngine(mw.RateLimit())

	assert.Equal(t, http.StatusOK, do(r, nil).Code)
	assert.Equal(t, http.StatusOK, do(r, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, nil).Code)
}

func TestRateLimit_KeyedBySession(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 1}, nil)
	r := newEngine(mw.RateLimit())

	assert.Equal(t, http.StatusOK, do(r, map[string]string{HeaderSessionID: "a"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, map[string]string{HeaderSessionID: "a"}).Code)
	assert.Equal(t, http.StatusOK, do(r, map[string]string{HeaderSessionID: "b"}).Code)
	assert.Equal(t, http.StatusOK, do(r, nil).Code)
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	// 20 per minute gives a burst of 2, shared by every caller of the key.
	rl := newRateLimiter(20)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("session:new") {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(2), allowed.Load())
	assert.Same(t, rl.get("session:new"), rl.get("session:new"))
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.9:1234"
	assert.Equal(t, "192.168.1.9", extractIP(req))

	req.Header.Set("X-Real-IP", "172.16.0.2")
	assert.Equal(t, "172.16.0.2", extractIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", extractIP(req))
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{}, nil)
	r := newEngine(mw.RequestID())

	w := do(r, map[string]string{HeaderRequestID: "req-123"})
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-123", w.Body.String())

	w = do(r, nil)
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())
}

func TestMetrics_RecordsRoute(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	mw := New(log.NewNop(), config.RateLimitConfig{}, m)
	r := newEngine(mw.Metrics())

	do(r, nil)
	do(r, nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCount.WithLabelValues("GET", "/ping", "200")))
}
