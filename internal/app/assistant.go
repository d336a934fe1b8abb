// Package app wires the dispatch core from configuration.
package app

import (
	"context"
	"fmt"

	"travel-assistant/config"
	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/agent/providers"
	"travel-assistant/internal/classifier"
	"travel-assistant/internal/dispatcher"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/session"
	"travel-assistant/internal/synthesizer"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// NewLLM builds the provider manager from cfg.LLM. Providers that fail to
// initialize are logged and skipped.
func NewLLM(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*llmprovider.Manager, error) {
	list, warnings, err := llmprovider.InitializeProviders(cfg)
	for _, w := range warnings {
		l.Warnf(ctx, "app.NewLLM: %s", w)
	}
	if err != nil {
		return nil, fmt.Errorf("app.NewLLM: %w", err)
	}

	managerCfg, err := llmprovider.NewManagerConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("app.NewLLM: %w", err)
	}

	for _, p := range list {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(list, managerCfg, l), nil
}

// NewAssistant builds the Orchestrator: capability registry, classifier chain,
// dispatcher and synthesizer, all sharing llm. m may be nil.
func NewAssistant(ctx context.Context, cfg *config.Config, llm *llmprovider.Manager, store session.Store, l log.Logger, m *metrics.Metrics) (*orchestrator.Orchestrator, error) {
	registry, err := providers.Build(ctx, llm, cfg.Capabilities, l)
	if err != nil {
		return nil, fmt.Errorf("app.NewAssistant: %w", err)
	}

	cls := classifier.NewChain(
		classifier.NewLLM(llm, l, cfg.Assistant.ClassifierTemperature),
		classifier.NewKeyword(),
		l,
	)

	disp := dispatcher.New(registry, dispatcher.Config{
		ProviderTimeout: cfg.Assistant.ProviderTimeout,
		Deadline:        cfg.Assistant.DispatchDeadline,
		MaxConcurrency:  cfg.Assistant.MaxConcurrency,
	}, l, m)

	synth := synthesizer.New(llm, cfg.Assistant.SynthesisTemperature, l, m)

	return orchestrator.New(cls, disp, synth, store, orchestrator.Config{
		HistoryLimit:  cfg.Assistant.HistoryLimit,
		FreezeHistory: cfg.Assistant.FreezeHistory,
	}, l, m), nil
}
