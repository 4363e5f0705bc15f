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

	"bookcatalog/internal/activity"
	"bookcatalog/internal/config"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/store"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	repo, err := openStore(cfg, logger)
	if err != nil {
		return err
	}

	recorder, closeRecorder := openActivity(cfg, logger)
	defer closeRecorder()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newHandler(ctx, cfg, repo, recorder, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openStore loads SEED_FILE when set, else the built-in seed.
func openStore(cfg config.Config, logger *slog.Logger) (*store.Memory, error) {
	if cfg.SeedFile == "" {
		logger.Info("catalog loaded", "source", "builtin")
		return store.NewMemoryFromSnapshot(store.SeedSnapshot()), nil
	}
	snap, err := store.LoadSnapshotFile(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		"source", cfg.SeedFile,
		"books", len(snap.Books),
		"authors", len(snap.Authors),
		"publications", len(snap.Publications),
	)
	return store.NewMemoryFromSnapshot(snap), nil
}

func openActivity(cfg config.Config, logger *slog.Logger) (activity.Recorder, func()) {
	if cfg.RedisURL == "" {
		logger.Info("activity backend selected", "backend", "memory", "depth", cfg.ActivityDepth)
		return activity.NewMemory(cfg.ActivityDepth), func() {}
	}
	rec := activity.NewRedis(cfg.RedisURL, cfg.ActivityDepth)
	logger.Info("activity backend selected", "backend", "redis", "addr", cfg.RedisURL, "depth", cfg.ActivityDepth)
	return rec, func() {
		if err := rec.Close(); err != nil {
			logger.Warn("closing activity backend", "error", err)
		}
	}
}

// newHandler builds the router and wraps it in the middleware chain. ctx
// bounds the rate limiter's background sweep.
func newHandler(ctx context.Context, cfg config.Config, repo *store.Memory, recorder activity.Recorder, logger *slog.Logger) http.Handler {
	router := apphttp.NewRouter(apphttp.Handlers{
		Books:        apphttp.NewBookHandler(repo),
		Authors:      apphttp.NewAuthorHandler(repo),
		Publications: apphttp.NewPublicationHandler(repo),
		Catalog:      apphttp.NewCatalogHandler(repo),
		Activity:     apphttp.NewActivityHandler(recorder),
		Health:       apphttp.NewHealthHandler(recorder),
	})

	middlewares := []func(http.Handler) http.Handler{
		httpx.RecoveryMiddleware(logger),
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	}
	if cfg.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
		middlewares = append(middlewares, limiter.Middleware)
	}
	middlewares = append(middlewares, httpx.ActivityMiddleware(recorder, logger))

	return httpx.Chain(router, middlewares...)
}
