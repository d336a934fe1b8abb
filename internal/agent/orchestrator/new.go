package orchestrator

import (
	"travel-assistant/internal/chat"
	"travel-assistant/internal/classifier"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/session"
	pkgLog "travel-assistant/pkg/log"
)

// Orchestrator drives one query through classify, route, dispatch and synthesize,
// and keeps each session's conversation state.
type Orchestrator struct {
	classifier  classifier.Classifier
	dispatcher  Dispatcher
	synthesizer Synthesizer
	store       session.Store
	cfg         Config
	l           pkgLog.Logger
	metrics     *metrics.Metrics
}

var _ chat.UseCase = (*Orchestrator)(nil)

// New creates an Orchestrator. m may be nil.
func New(cls classifier.Classifier, disp Dispatcher, synth Synthesizer, store session.Store, cfg Config, l pkgLog.Logger, m *metrics.Metrics) *Orchestrator {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &Orchestrator{
		classifier:  cls,
		dispatcher:  disp,
		synthesizer: synth,
		store:       store,
		cfg:         cfg,
		l:           l,
		metrics:     m,
	}
}
