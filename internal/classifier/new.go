package classifier

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// LLMClassifier asks a language model which capabilities apply.
type LLMClassifier struct {
	llm         llmprovider.Completer
	l           log.Logger
	temperature float64
}

var _ Classifier = (*LLMClassifier)(nil)

// NewLLM creates an LLMClassifier. temperature <= 0 selects DefaultTemperature.
func NewLLM(llm llmprovider.Completer, l log.Logger, temperature float64) *LLMClassifier {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	return &LLMClassifier{
		llm:         llm,
		l:           l,
		temperature: temperature,
	}
}

// NewKeyword creates the deterministic keyword classifier.
func NewKeyword() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Chain tries a primary classifier and falls back to a secondary one.
type Chain struct {
	primary  Classifier
	fallback Classifier
	l        log.Logger
	tracer   trace.Tracer
}

var _ Classifier = (*Chain)(nil)

// NewChain composes primary and fallback. A nil primary means keyword-only.
func NewChain(primary, fallback Classifier, l log.Logger) *Chain {
	return &Chain{
		primary:  primary,
		fallback: fallback,
		l:        l,
		tracer:   otel.Tracer(TracerName),
	}
}
