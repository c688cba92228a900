// Package cli holds the initialization shared by cmd/spolek and
// cmd/spolek-worker.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spolek/internal/config"
	applog "spolek/internal/log"
	"spolek/internal/storage"
)

// SetupLogger initializes structured logging and installs it as the
// default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads a local .env file. Missing files are fine; production
// sets real environment variables.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration, exiting the process when it is
// invalid.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitSQLite opens the repository, exiting the process on failure.
func InitSQLite(logger *applog.Logger, dbPath string) *storage.SQLiteRepository {
	repo, err := storage.NewSQLiteRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return repo
}

// GracefulShutdown wires SIGINT/SIGTERM to a cancellable context. The
// returned channel closes once cleanup has run.
func GracefulShutdown(logger *applog.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		if cleanup != nil {
			cleanup()
		}

		cancel()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Shutdown timeout reached")
		case <-time.After(2 * time.Second):
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the shutdown sequence finishes.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
