// Package main provides the command-line client for the travel assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"travel-assistant/config"
	"travel-assistant/internal/app"
	"travel-assistant/internal/chat"
	"travel-assistant/internal/session"
	"travel-assistant/pkg/log"
)

// Version information (set at build time)
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(buildAssistant).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// assistantFactory builds the Session API for a command run.
type assistantFactory func(ctx context.Context) (chat.UseCase, error)

func newRootCmd(build assistantFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "travel-cli",
		Short:        "Ask the travel assistant from the terminal",
		Long:         "Answers Taiwan travel questions about weather, highway traffic, routes, parking, nearby places and itineraries.",
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAskCmd(build), newChatCmd(build))
	return rootCmd
}

// buildAssistant wires the same Orchestrator as the API with an in-memory session store.
func buildAssistant(ctx context.Context) (chat.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	llm, err := app.NewLLM(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	store := session.NewMemory(cfg.Session.MaxSessions, cfg.Session.TTL, nil)
	return app.NewAssistant(ctx, cfg, llm, store, logger, nil)
}
