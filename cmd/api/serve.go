package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/config"
	"github.com/SparkFusion25/Logistic-Intel-smart-search-sub004/internal/di"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: string(cfg.Environment),
		}); err != nil {
			return fmt.Errorf("failed to initialize sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	app, cleanup, err := di.InitializeApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer cleanup()

	if path := os.Getenv("CONFIG_FILE"); path != "" && !cfg.IsProduction() {
		watcher, err := config.NewWatcher(path, app.Config, app.Logger)
		if err != nil {
			app.Logger.Warn("Configuration hot reloading unavailable", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      app.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", string(cfg.Environment)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	app.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("Server shutdown error", zap.Error(err))
	}
	app.Shutdown(shutdownCtx)
	return nil
}
