package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
)

// Dispatch invokes each capability in plan with the query and returns one entry
// per planned capability. A failed or timed-out capability gets an explanatory
// entry instead of aborting the others. An empty plan yields an empty ResultSet.
func (d *Dispatcher) Dispatch(ctx context.Context, plan model.Plan, query model.Query) model.ResultSet {
	results := model.NewResultSet()
	if plan.Empty() {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Deadline)
	defer cancel()

	var mu sync.Mutex
	// Plain Group: goroutines never return an error, so nothing cancels siblings.
	var g errgroup.Group
	if d.cfg.MaxConcurrency > 0 {
		g.SetLimit(d.cfg.MaxConcurrency)
	}

	start := time.Now()
	for _, id := range plan {
		g.Go(func() error {
			text := d.invoke(ctx, id, query)
			mu.Lock()
			results.Set(id, text)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	d.l.Debugf(ctx, "%s: %d capabilities joined in %s", LogPrefixDispatch, results.Len(), time.Since(start))
	return results
}

type callResult struct {
	text string
	err  error
}

// invoke runs one capability and always returns the text to record for it.
func (d *Dispatcher) invoke(ctx context.Context, id model.CapabilityID, query model.Query) string {
	ctx, span := d.tracer.Start(ctx, "capability."+string(id))
	defer span.End()
	span.SetAttributes(attribute.String("capability", string(id)))

	start := time.Now()
	text, err := d.call(ctx, id, query)
	elapsed := time.Since(start)

	if err == nil {
		d.metrics.ObserveCapability(string(id), metrics.OutcomeSuccess, elapsed)
		return text
	}

	timedOut := errors.Is(err, context.DeadlineExceeded)
	outcome := metrics.OutcomeFailure
	if timedOut {
		outcome = metrics.OutcomeTimeout
	}
	d.metrics.ObserveCapability(string(id), outcome, elapsed)

	invokeErr := &agent.InvokeError{Capability: id, Err: err}
	span.RecordError(invokeErr)
	span.SetStatus(codes.Error, outcome)
	d.l.Warnf(ctx, "%s: %v (outcome=%s, elapsed=%s)", LogPrefixInvoke, invokeErr, outcome, elapsed)

	return FailureMessage(id, timedOut)
}

// call runs the provider with its own timeout. A provider that ignores its
// context is abandoned when the context ends; its late result is dropped.
func (d *Dispatcher) call(ctx context.Context, id model.CapabilityID, query model.Query) (string, error) {
	provider, ok := d.providers.Get(id)
	if !ok {
		return "", agent.ErrMissingProvider
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.ProviderTimeout)
	defer cancel()

	history := model.CloneTurns(query.History)
	done := make(chan callResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("%w: %v", agent.ErrProviderPanic, r)}
			}
		}()
		text, err := provider.Invoke(ctx, query.Text, history)
		done <- callResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", res.err
		}
		if strings.TrimSpace(res.text) == "" {
			return "", errors.New("empty partial result")
		}
		return res.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// FailureMessage is the explanatory partial result recorded for a failed capability.
func FailureMessage(id model.CapabilityID, timedOut bool) string {
	if timedOut {
		return fmt.Sprintf(MsgTimeout, id.Label())
	}
	return fmt.Sprintf(MsgFailure, id.Label())
}
