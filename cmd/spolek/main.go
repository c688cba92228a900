package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"spolek/internal/amqp"
	"spolek/internal/assistant"
	"spolek/internal/cli"
	"spolek/internal/export"
	apphttp "spolek/internal/http"
	"spolek/internal/inventory"
	"spolek/internal/ledger"
	"spolek/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting spolek server", "port", cfg.Port)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer func() { _ = repo.Close() }()

	// The journal lives in memory for the browser session; only the
	// checklist and the audit trail persist.
	store := ledger.NewStore()
	seeded := store.Seed(ledger.DemoEntries())
	logger.Info("Journal seeded with demo entries", "count", seeded)

	var publisher services.EventPublisher
	var amqpClient *amqp.Client
	if cfg.AMQPEnabled() {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("AMQP unavailable, ledger events will not be published", "error", err)
		} else {
			publisher = amqpClient
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	}
	defer func() {
		if amqpClient != nil {
			_ = amqpClient.Close()
		}
	}()

	ledgerSvc := services.NewLedgerService(store, publisher)

	gemini, err := assistant.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Error("Failed to initialize Gemini client", "error", err)
		os.Exit(1)
	}
	var gen assistant.Generator
	if gemini != nil {
		gen = gemini
		logger.Info("Gemini assistant initialized", "model", cfg.GeminiModel)
	} else {
		logger.Info("Gemini assistant disabled - no GEMINI_API_KEY provided")
	}
	assist := assistant.New(gen)

	importSvc := services.NewImportService(assist, ledgerSvc)

	sheetsClient, err := export.NewSheetsFromEnv(context.Background())
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", "error", err)
		os.Exit(1)
	}
	var sink apphttp.SnapshotSink
	if sheetsClient != nil {
		sink = sheetsClient
		logger.Info("Google Sheets snapshot sink initialized")
	}

	srv := apphttp.NewServer(apphttp.Config{
		Port:            cfg.Port,
		DefaultLanguage: cfg.DefaultLanguage,
		UpdatesCacheTTL: cfg.UpdatesCacheTTL,
	}, ledgerSvc, importSvc, assist, repo, inventory.NewList(), sink)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
