// Package main is the entrypoint for the FightLab analysis API server.
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

	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/ai"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/handler"
	mw "github.com/quantumcreationsapp-ai/fightlabai-backend/internal/api/middleware"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/cache"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/config"
	"github.com/quantumcreationsapp-ai/fightlabai-backend/internal/store"
)

const (
	serviceName     = "fightlab-backend"
	serviceVersion  = "2.0.0"
	shutdownTimeout = 30 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config — fail fast on invalid config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("config loaded", "ai_provider", cfg.AI.Provider, "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Create the status cache. Redis is optional; without a URL the
	// server runs on the no-op cache.
	var statusCache cache.Cache = cache.NoopCache{}
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("create redis cache: %w", err)
		}
		defer redisCache.Close()

		if err := redisCache.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		statusCache = redisCache
		slog.Info("redis connected")
	}

	// 3. Create model provider
	provider, err := ai.NewProvider(cfg.AI)
	if err != nil {
		return fmt.Errorf("create model provider: %w", err)
	}
	slog.Info("model provider initialized", "provider", provider.Name())

	// 4. Create the job store; reaper lifetime is scoped to the process.
	jobStore := store.NewMemoryStore(cfg.Jobs.TTL)
	jobStore.StartReaper(ctx, cfg.Jobs.ReapInterval)

	// 5. Create the analysis service
	svc := ai.NewService(provider, jobStore, statusCache, cfg.AI.AnalysisTimeout)

	// 6. Build router with dependencies
	deps := api.Dependencies{
		Auth:      mw.NewAuth(cfg.Auth.APIKeyHash),
		RateLimit: mw.NewRateLimit(statusCache, cfg.Jobs.RateLimitPerMinute),

		RootHandler: handler.NewRootHandler(handler.ServiceInfo{
			Name:    serviceName,
			Version: serviceVersion,
			Env:     cfg.Server.Env,
		}),
		HealthHandler:     handler.NewHealthHandler(time.Now()),
		AnalyzeHandler:    handler.NewAnalyzeHandler(svc),
		StatusHandler:     handler.NewStatusHandler(jobStore),
		ReportHandler:     handler.NewReportHandler(jobStore),
		TestReportHandler: handler.NewTestReportHandler(),
	}

	router := api.NewRouter(deps)

	// 7. Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: 5 * time.Minute, // large multipart uploads from mobile networks
		IdleTimeout: 60 * time.Second,
	}

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received, draining connections...")
	}

	// Graceful shutdown with timeout. In-flight analysis goroutines are
	// abandoned; their jobs stay processing and the client is told to retry.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
