package synthesizer

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/internal/metrics"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Output is a synthesized answer and the path that produced it.
type Output struct {
	Text string
	// Path is one of metrics.PathEmpty, PathSingle, PathLLM, PathFallback.
	Path string
}

// Synthesizer merges a ResultSet into one answer.
type Synthesizer struct {
	llm         llmprovider.Completer
	temperature float64
	l           log.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

// New creates a Synthesizer. A nil llm always uses the deterministic rendering; m may be nil.
func New(llm llmprovider.Completer, temperature float64, l log.Logger, m *metrics.Metrics) *Synthesizer {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &Synthesizer{
		llm:         llm,
		temperature: temperature,
		l:           l,
		metrics:     m,
		tracer:      otel.Tracer(TracerName),
	}
}
