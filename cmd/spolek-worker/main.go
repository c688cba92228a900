package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"spolek/internal/amqp"
	"spolek/internal/cli"
	applog "spolek/internal/log"
	"spolek/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(applog.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	if !cfg.AMQPEnabled() {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	logger.Info("Starting spolek-worker", "queue", cfg.AMQPQueue)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer func() { _ = repo.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := amqp.DialWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer func() { _ = client.Close() }()

	auditWorker := worker.NewAuditWorker(repo)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return auditWorker.Run(gctx, client)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}
