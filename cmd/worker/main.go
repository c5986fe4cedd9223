package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SamWeninger/shopping-assistant/pkg/app"
	"github.com/SamWeninger/shopping-assistant/pkg/cache"
	"github.com/SamWeninger/shopping-assistant/pkg/config"
	"github.com/SamWeninger/shopping-assistant/pkg/database"
	"github.com/SamWeninger/shopping-assistant/pkg/events"
	"github.com/SamWeninger/shopping-assistant/pkg/logger"
	"github.com/SamWeninger/shopping-assistant/pkg/telemetry"
	"github.com/SamWeninger/shopping-assistant/pkg/workflows"
	shoppingListServices "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/services"
	shoppingListWorkflows "github.com/SamWeninger/shopping-assistant/services/shoppinglist/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.StoreBackend == config.StoreMemory {
		log.Error("worker needs the event bus; STORE_BACKEND=memory publishes no events")
		os.Exit(1)
	}

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	a := &app.Application{Config: cfg, Logger: log}

	if cfg.StoreBackend == config.StorePostgres {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer pool.Close()
		log.Info("database pool connected")
		a.Db = pool
	}

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	// EventBus.Close() waits up to 30s for in-flight handlers.
	defer eventBus.Close() //nolint:errcheck
	a.EventBus = eventBus

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")
	a.Redis = redisClient

	svcs, err := shoppingListServices.New(a)
	if err != nil {
		log.Error("failed to build shopping list services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	rec := &receiptReconciler{
		receipts: svcs.Receipts,
		ttl:      svcs.Receipts.TTL(),
		grace:    cfg.ReceiptReconcileGrace,
		now:      time.Now,
		log:      log,
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		a.TemporalClient = temporalClient

		w := temporalClient.NewWorker()
		shoppingListWorkflows.Register(w, &shoppingListWorkflows.Activities{Receipts: svcs.Receipts})
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)

		rec.start = func(ctx context.Context, in shoppingListWorkflows.ReconcileReceiptInput) error {
			_, err := shoppingListWorkflows.StartReconciliation(ctx, temporalClient.Client, temporalClient.TaskQueue, in)
			return err
		}
	}

	if err := registerSubscribers(ctx, a, subscribers(cache.NewListCache(redisClient), rec, log)); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	log.Info("worker stopped")
}

// registerSubscribers attaches every handler to the event bus. Errors left
// after the bus's retries are logged and reported to Sentry.
func registerSubscribers(ctx context.Context, a *app.Application, subs []subscription) error {
	topics := make([]string, 0, len(subs))
	for _, s := range subs {
		errCh, err := a.EventBus.Subscribe(ctx, s.topic, s.handler)
		if err != nil {
			return err
		}
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
				telemetry.ReportError(err, map[string]string{"topic": topic})
			}
		}(s.topic)
		topics = append(topics, s.topic)
	}
	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}
