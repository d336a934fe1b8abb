package orchestrator

import (
	"context"

	"travel-assistant/internal/model"
	"travel-assistant/internal/synthesizer"
)

// Dispatcher fans a plan out to capability providers. *dispatcher.Dispatcher satisfies it.
type Dispatcher interface {
	Dispatch(ctx context.Context, plan model.Plan, query model.Query) model.ResultSet
}

// Synthesizer merges a ResultSet into one answer. *synthesizer.Synthesizer satisfies it.
type Synthesizer interface {
	Synthesize(ctx context.Context, query string, results model.ResultSet) synthesizer.Output
}

// StageObserver is told about every lifecycle stage a query passes through.
type StageObserver func(ctx context.Context, sessionID string, stage model.Stage)

// Config tunes how the conversation state evolves.
type Config struct {
	// HistoryLimit caps the stored turns per session; 0 uses DefaultHistoryLimit.
	HistoryLimit int
	// FreezeHistory keeps the stored history unchanged by new queries.
	FreezeHistory bool
	Observer      StageObserver
}
