package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travel-assistant/config"
	_ "travel-assistant/docs" // Swagger docs
	"travel-assistant/internal/app"
	"travel-assistant/internal/httpserver"
	"travel-assistant/internal/metrics"
	"travel-assistant/internal/middleware"
	"travel-assistant/internal/session"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// @title       Travel Assistant API
// @description Answers travel questions by dispatching them to weather, highway, route, parking, nearby, itinerary and general capabilities.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Travel Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// 4. LLM providers
	llm, err := app.NewLLM(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		os.Exit(1)
	}

	// 5. Conversation state
	store, closeStore, err := session.New(ctx, cfg, logger, m)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		os.Exit(1)
	}

	// 6-8. Dispatch core, HTTP server, run
	runErr := serve(ctx, cfg, logger, registry, m, llm, store)
	if err := closeStore(); err != nil {
		logger.Warnf(ctx, "Failed to close session store: %v", err)
	}
	if runErr != nil {
		logger.Error(ctx, runErr)
		stop()
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// serve builds the assistant and the HTTP server, then blocks until ctx is done.
func serve(ctx context.Context, cfg *config.Config, logger log.Logger, registry *prometheus.Registry, m *metrics.Metrics, llm *llmprovider.Manager, store session.Store) error {
	assistant, err := app.NewAssistant(ctx, cfg, llm, store, logger, m)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, cfg.RateLimit, m),
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Readiness: func(ctx context.Context) error {
			_, err := store.Load(ctx, "readiness-check")
			return err
		},
		ChatUseCase: assistant,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}
