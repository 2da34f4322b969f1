package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"financio/internal/amqp"
	"financio/internal/config"
	"financio/internal/core"
	"financio/internal/ledger"
	"financio/internal/log"
	"financio/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: "financio-worker",
	})
	log.SetDefault(logger)

	logger.Info("Starting financio-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	var events ledger.EventPublisher
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			defer amqpClient.Close()
			events = amqpClient
			logger.Info("AMQP client initialized - ledger events will be published")
		}
	} else {
		logger.Info("AMQP disabled - ledger events will not be published")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	persist := storage.NewFileStore(cfg.DataFile)
	logger.Info("Recurring rule processor configured",
		"interval", cfg.ProcessInterval,
		"data_file", cfg.DataFile)

	// Run initial processing on startup
	if count, err := processOnce(ctx, persist, events); err != nil {
		logger.Error("Initial processing failed", "error", err)
	} else {
		logger.Info("Initial processing complete", "transactions_created", count)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(cfg.ProcessInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				count, err := processOnce(ctx, persist, events)
				if err != nil {
					logger.Error("Periodic processing failed", "error", err)
					continue
				}
				logger.Info("Periodic processing complete", "transactions_created", count)
			}
		}
	})

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		logger.Error("Worker stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Financio-worker shutdown complete")
}

// processOnce reloads the ledger document and realizes any due recurring
// occurrences. Reloading each tick picks up changes made by the CLI while
// the worker is running.
func processOnce(ctx context.Context, persist ledger.Persister, events ledger.EventPublisher) (int, error) {
	store, err := ledger.Open(ctx, persist, events)
	if err != nil {
		return 0, err
	}
	count, err := ledger.NewEngine(store).ProcessDue(ctx, core.Today())
	if err != nil {
		return count, err
	}
	if count > 0 {
		slog.InfoContext(ctx, "Realized due recurring transactions", "count", count)
	}
	return count, nil
}
