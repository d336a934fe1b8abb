package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"travel-assistant/internal/chat"
	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
)

// ProcessQuery answers text within sessionID. Every stage degrades instead of
// failing, so the only errors are invalid input.
func (o *Orchestrator) ProcessQuery(ctx context.Context, sessionID, text string) (chat.Answer, error) {
	if sessionID == "" {
		return chat.Answer{}, chat.ErrEmptySessionID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return chat.Answer{}, chat.ErrEmptyQuery
	}
	o.advance(ctx, sessionID, model.StageReceived)

	prior := o.load(ctx, sessionID)
	query := model.Query{Text: text, History: model.CloneTurns(prior)}

	caps, err := o.classifier.Classify(ctx, query)
	if err != nil || len(caps) == 0 {
		o.l.Warnf(ctx, "%s: "+LogMsgClassifyFailed, LogPrefixProcessQuery, err)
		caps = []model.CapabilityID{model.CapabilityGeneral}
	}
	o.advance(ctx, sessionID, model.StageClassified)

	plan := router.Route(caps)
	o.advance(ctx, sessionID, model.StageRouted)

	results := o.dispatcher.Dispatch(ctx, plan, query)
	o.advance(ctx, sessionID, model.StageDispatched)

	out := o.synthesizer.Synthesize(ctx, text, results)
	o.advance(ctx, sessionID, model.StageSynthesized)

	history := prior
	if !o.cfg.FreezeHistory {
		history = append(history,
			model.Turn{Role: model.RoleUser, Content: text},
			model.Turn{Role: model.RoleAssistant, Content: out.Text},
		)
		if len(history) > o.cfg.HistoryLimit {
			history = model.LastTurns(history, o.cfg.HistoryLimit)
			o.l.Debugf(ctx, "%s: "+LogMsgHistoryTruncated, LogPrefixProcessQuery, sessionID, o.cfg.HistoryLimit)
		}
		if err := o.store.Save(ctx, sessionID, history); err != nil {
			o.l.Errorf(ctx, "%s: "+LogMsgSaveFailed, LogPrefixProcessQuery, sessionID, err)
		}
	}

	o.metrics.ObserveQuery(out.Path)
	o.l.Infof(ctx, "%s: "+LogMsgQueryDone, LogPrefixProcessQuery, sessionID, out.Path, plan.Strings())
	o.advance(ctx, sessionID, model.StageDone)

	return chat.Answer{
		FinalAnswer: out.Text,
		History:     model.CloneTurns(history),
	}, nil
}

// ClearHistory empties the session.
func (o *Orchestrator) ClearHistory(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return chat.ErrEmptySessionID
	}
	if err := o.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixClearHistory, err)
	}
	o.l.Infof(ctx, "%s: session %s cleared", LogPrefixClearHistory, sessionID)
	return nil
}

// History returns the stored turns of the session.
func (o *Orchestrator) History(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if sessionID == "" {
		return nil, chat.ErrEmptySessionID
	}
	turns, err := o.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixHistory, err)
	}
	return model.CloneTurns(turns), nil
}

func (o *Orchestrator) load(ctx context.Context, sessionID string) []model.Turn {
	turns, err := o.store.Load(ctx, sessionID)
	if err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgLoadFailed, LogPrefixProcessQuery, sessionID, err)
		return []model.Turn{}
	}
	return turns
}

func (o *Orchestrator) advance(ctx context.Context, sessionID string, stage model.Stage) {
	o.l.Debugf(ctx, "%s: "+LogMsgStage, LogPrefixProcessQuery, sessionID, stage)
	if o.cfg.Observer != nil {
		o.cfg.Observer(ctx, sessionID, stage)
	}
}
