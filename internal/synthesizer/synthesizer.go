package synthesizer

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"travel-assistant/internal/metrics"
	"travel-assistant/internal/model"
)

// Synthesize never fails. Empty results give MsgEmpty, a single result is
// returned verbatim, and two or more are merged by the model with Render as
// the fallback.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, results model.ResultSet) Output {
	ctx, span := s.tracer.Start(ctx, "synthesizer.synthesize")
	defer span.End()

	out := s.synthesize(ctx, query, results)
	span.SetAttributes(
		attribute.String("synthesis.path", out.Path),
		attribute.Int("synthesis.sections", results.Len()),
	)
	s.metrics.ObserveSynthesis(out.Path)
	return out
}

func (s *Synthesizer) synthesize(ctx context.Context, query string, results model.ResultSet) Output {
	if results.Len() == 0 {
		return Output{Text: MsgEmpty, Path: metrics.PathEmpty}
	}

	if _, text, ok := results.Only(); ok {
		return Output{Text: text, Path: metrics.PathSingle}
	}

	text, err := s.merge(ctx, query, results)
	if err != nil {
		s.l.Warnf(ctx, "%s: using deterministic rendering: %v", LogPrefixSynthesize, err)
		return Output{Text: Render(results), Path: metrics.PathFallback}
	}
	return Output{Text: text, Path: metrics.PathLLM}
}

func (s *Synthesizer) merge(ctx context.Context, query string, results model.ResultSet) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("%w: no language model configured", ErrSynthesisUnavailable)
	}

	reply, err := s.llm.Complete(ctx, BuildPrompt(query, results), s.temperature)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrSynthesisUnavailable)
	}
	return reply, nil
}

// BuildPrompt repeats the query, states each present capability's scope, and
// includes every partial result verbatim under its label.
func BuildPrompt(query string, results model.ResultSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, PromptIntegrate, query)

	keys := results.Keys()
	for _, id := range keys {
		fmt.Fprintf(&sb, "- %s\n", scopes[id])
	}

	sb.WriteString("\n以下是各個專業工具的回應:\n")
	for _, id := range keys {
		fmt.Fprintf(&sb, PromptSectionHeader, id.Label())
		sb.WriteString(results[id])
		sb.WriteString("\n")
	}

	sb.WriteString(PromptIntegrateTail)
	return sb.String()
}

// Render concatenates the present results in the fixed presentation order.
func Render(results model.ResultSet) string {
	if results.Len() == 0 {
		return MsgEmpty
	}

	var sb strings.Builder
	sb.WriteString(MsgIntro)
	sb.WriteString("\n\n")

	keys := results.Keys()
	for _, id := range keys {
		sb.WriteString(headings[id])
		sb.WriteString("\n")
		sb.WriteString(results[id])
		sb.WriteString("\n\n")
	}

	if len(keys) >= 2 {
		sb.WriteString(MsgClosing)
	}
	return strings.TrimRight(sb.String(), "\n")
}
