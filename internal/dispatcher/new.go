package dispatcher

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// ProviderLookup resolves a capability to its provider. *agent.Registry satisfies it.
type ProviderLookup interface {
	Get(id model.CapabilityID) (agent.Provider, bool)
}

// Config bounds a dispatch.
type Config struct {
	// ProviderTimeout applies to each invocation independently.
	ProviderTimeout time.Duration
	// Deadline bounds the whole fan-out, including the join.
	Deadline time.Duration
	// MaxConcurrency limits in-flight invocations; 0 runs every plan entry at once.
	MaxConcurrency int
}

// Dispatcher invokes every planned capability concurrently and joins the results.
type Dispatcher struct {
	providers ProviderLookup
	cfg       Config
	l         log.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

// New creates a Dispatcher. m may be nil.
func New(providers ProviderLookup, cfg Config, l log.Logger, m *metrics.Metrics) *Dispatcher {
	if cfg.ProviderTimeout <= 0 {
		cfg.ProviderTimeout = DefaultProviderTimeout
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = DefaultDeadline
	}
	return &Dispatcher{
		providers: providers,
		cfg:       cfg,
		l:         l,
		metrics:   m,
		tracer:    otel.Tracer(TracerName),
	}
}
