package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	temporalworker "go.temporal.io/sdk/worker"

	"github.com/ghuser/shelfwatch/pkg/app"
	"github.com/ghuser/shelfwatch/pkg/cache"
	"github.com/ghuser/shelfwatch/pkg/config"
	"github.com/ghuser/shelfwatch/pkg/database"
	"github.com/ghuser/shelfwatch/pkg/events"
	"github.com/ghuser/shelfwatch/pkg/logger"
	"github.com/ghuser/shelfwatch/pkg/telemetry"
	"github.com/ghuser/shelfwatch/pkg/workflows"
	stockservices "github.com/ghuser/shelfwatch/services/stock/application/services"
	stockevents "github.com/ghuser/shelfwatch/services/stock/domain/events"
	"github.com/ghuser/shelfwatch/services/stock/infrastructure/persistence/postgres"
	stockworkflows "github.com/ghuser/shelfwatch/services/stock/workflows"
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

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Config:         cfg,
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	svc := stockservices.New(appConfig)

	if err := registerSubscribers(ctx, appConfig, svc); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if err := startExpirySweep(ctx, appConfig, svc); err != nil {
		log.Error("failed to start expiry sweep worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application, svc *stockservices.Services) error {
	errCh, err := a.EventBus.Subscribe(ctx, stockevents.TopicStockChanged, handleStockChanged(a, svc))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", stockevents.TopicStockChanged,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{stockevents.TopicStockChanged})
	return nil
}

// handleStockChanged returns a handler for stock.changed events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Every change triggers a full-snapshot urgency recompute: the report
// reloads the user's stock (rewarming the Redis snapshot cache along
// the way) and advances the alert gate.
func handleStockChanged(a *app.Application, svc *stockservices.Services) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt stockevents.StockChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		report, err := svc.Urgency.Report(ctx, evt.UserID)
		if err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "urgency recomputed",
			"user_id", evt.UserID,
			"kind", evt.Kind,
			"item_id", evt.ItemID,
			"warning", len(report.Warning),
			"expired", len(report.Expired),
			"alert_pending", report.AlertPending,
		)
		return nil
	}
}

// startExpirySweep registers the nightly sweep workflow on the stock
// task queue and ensures its cron schedule exists.
func startExpirySweep(ctx context.Context, a *app.Application, svc *stockservices.Services) error {
	items := postgres.NewStockItemRepository(a.Db, nil)
	acts := stockworkflows.NewSweepActivities(items, svc.Urgency, a.Logger)

	w := temporalworker.New(a.TemporalClient.Client, stockworkflows.TaskQueue, temporalworker.Options{})
	w.RegisterWorkflow(stockworkflows.ExpirySweepWorkflow)
	w.RegisterActivity(acts.SweepAllUsers)
	if err := w.Start(); err != nil {
		return err
	}

	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           stockworkflows.ExpirySweepWorkflowID,
		TaskQueue:    stockworkflows.TaskQueue,
		CronSchedule: stockworkflows.ExpirySweepCron,
	}, stockworkflows.ExpirySweepWorkflow)

	var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
	if err != nil && !errors.As(err, &alreadyStarted) {
		w.Stop()
		return err
	}

	a.Logger.Info("expiry sweep worker started",
		"task_queue", stockworkflows.TaskQueue, "cron", stockworkflows.ExpirySweepCron)
	return nil
}
