package middleware

import (
	"travel-assistant/config"
	"travel-assistant/internal/metrics"
	"travel-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	limiter *rateLimiter
}

// New creates the HTTP middleware set. m may be nil. A disabled rate limit leaves limiter nil.
func New(l log.Logger, cfg config.RateLimitConfig, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
	}
	if cfg.Enabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
