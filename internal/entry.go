// Package internal provides the main application initialization and runtime logic.
package internal

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/raido/internal/api"
	"github.com/starford/raido/internal/engine"
	"github.com/starford/raido/internal/marker"
	"github.com/starford/raido/internal/mcpserver"
	"github.com/starford/raido/internal/settings"
	"github.com/starford/raido/internal/sse"
	"github.com/starford/raido/internal/vault"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. In MCP mode stdout belongs to the
	// protocol, so logs go to stderr either way.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("vault_path", cfg.Vault.Path),
		slog.Int("debounce_ms", cfg.Watch.DebounceMS),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure vault directory exists.
	if err := os.MkdirAll(cfg.Vault.Path, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	// Initialize vault access.
	store, err := vault.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init vault: %w", err)
	}

	// Resolve settings: the config record is the first-run default; a
	// previously persisted record takes precedence.
	initial := cfg.Index
	if cfg.Vault.SettingsPath != "" {
		if loaded, loadErr := settings.Load(cfg.Vault.SettingsPath); loadErr != nil {
			logger.Warn("persisted settings unreadable, using config defaults",
				slog.String("path", cfg.Vault.SettingsPath),
				slog.String("error", loadErr.Error()))
		} else {
			initial = loaded
		}
	}
	settingsStore := settings.NewStore(cfg.Vault.SettingsPath, initial, logger)

	// SSE broker.
	broker := sse.NewBroker()
	defer broker.Close()

	eng := engine.New(store, settingsStore, logger, func(kind marker.Kind, notePath string) {
		broker.PublishIndexEvent(kind.String(), notePath)
	})

	// Bring every marked folder note up to date before watching.
	if err := eng.FullPass(); err != nil {
		logger.Warn("initial full pass failed", slog.String("error", err.Error()))
	}

	g, gCtx := errgroup.WithContext(ctx)

	// Start file watcher.
	g.Go(func() error {
		return eng.Watch(gCtx, store.Root(), time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
	})

	if app.mcp {
		// MCP stdio mode: serve the protocol instead of HTTP.
		g.Go(func() error {
			logger.Info("Starting MCP stdio server")
			return mcpserver.New(eng, settingsStore).ServeStdio()
		})
		return g.Wait()
	}

	// Build API service and router.
	svc := api.NewService(eng, settingsStore)
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, http.HandlerFunc(broker.ServeHTTP))

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	// Start HTTP server.
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
