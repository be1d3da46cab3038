// cmd/service/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github-roaster/internal/analysis"
	"github-roaster/internal/api"
	"github-roaster/internal/completion"
	"github-roaster/internal/config"
	"github-roaster/internal/github"
	"github-roaster/internal/metrics"
	"github-roaster/internal/prompt"
	"github-roaster/internal/ratelimit"
	"github-roaster/internal/roaster"
)

const shutdownTimeout = 20 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application startup error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Initialize structured logger
	logLevel := new(slog.LevelVar)
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// 2. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setLogLevel(cfg.LogLevel, logLevel)
	logger.Info("Configuration loaded successfully")

	// 3. Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 4. Initialize application components
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	ghClient, err := github.NewClient(cfg.GithubAPIURL, cfg.GithubTimeout, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}
	llmClient := completion.NewClient(completion.Config{
		APIKey:       cfg.OpenAIAPIKey,
		BaseURL:      cfg.OpenAIBaseURL,
		Model:        cfg.OpenAIModel,
		Timeout:      cfg.OpenAITimeout,
		SystemPrompt: prompt.SystemPrompt,
	}, logger)
	analyzer := analysis.NewAnalyzer(analysis.Options{
		RecentCutoff:  cfg.RecentActivityCutoff,
		GenericNames:  cfg.GenericRepoNames,
		MinimalSizeKB: cfg.MinimalRepoSizeKB,
	})
	svc := roaster.NewService(ghClient, analyzer, llmClient, appMetrics, logger)

	router := api.NewRouter(api.RouterConfig{
		Roaster:            svc,
		Logger:             logger,
		Metrics:            appMetrics,
		Gatherer:           registry,
		Limiter:            ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
		DefaultTemperature: cfg.DefaultTemperature,
		RequestTimeout:     cfg.GithubTimeout*2 + cfg.OpenAITimeout,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// 5. Serve until a shutdown signal arrives
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received. Exiting.")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setLogLevel(level string, v *slog.LevelVar) {
	switch level {
	case "debug":
		v.Set(slog.LevelDebug)
	case "warn":
		v.Set(slog.LevelWarn)
	case "error":
		v.Set(slog.LevelError)
	default:
		v.Set(slog.LevelInfo)
	}
}
