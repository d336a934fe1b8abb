package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for capability invocations
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeTimeout = "timeout"
)

// Synthesis path labels
const (
	PathEmpty    = "empty"
	PathSingle   = "single"
	PathLLM      = "llm"
	PathFallback = "fallback"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	CapabilityInvocations *prometheus.CounterVec
	CapabilityDuration    *prometheus.HistogramVec
	SynthesisTotal        *prometheus.CounterVec
	QueriesTotal          *prometheus.CounterVec
	RequestCount          *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
	ActiveSessions        prometheus.Gauge
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CapabilityInvocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_capability_invocations_total",
				Help: "Total number of capability invocations by outcome",
			},
			[]string{"capability", "outcome"},
		),
		CapabilityDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "travel_capability_duration_seconds",
				Help: "Capability invocation duration in seconds",
			},
			[]string{"capability"},
		),
		SynthesisTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_synthesis_total",
				Help: "Total number of synthesized answers by path",
			},
			[]string{"path"},
		),
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_queries_total",
				Help: "Total number of completed queries by synthesis path",
			},
			[]string{"path"},
		),
		RequestCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "travel_http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
			},
			[]string{"method", "endpoint"},
		),
		ActiveSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "travel_active_sessions",
				Help: "Number of sessions held by the in-memory store",
			},
		),
	}
}

// ObserveCapability records one finished capability invocation.
func (m *Metrics) ObserveCapability(capability, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CapabilityInvocations.WithLabelValues(capability, outcome).Inc()
	m.CapabilityDuration.WithLabelValues(capability).Observe(elapsed.Seconds())
}

// ObserveSynthesis records which synthesis path produced an answer.
func (m *Metrics) ObserveSynthesis(path string) {
	if m == nil {
		return
	}
	m.SynthesisTotal.WithLabelValues(path).Inc()
}

// ObserveQuery records one completed query.
func (m *Metrics) ObserveQuery(path string) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(path).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(method, endpoint, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestCount.WithLabelValues(method, endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// SetActiveSessions reports the current session count.
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
