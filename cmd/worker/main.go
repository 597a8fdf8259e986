package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/elearnhq/lessons-ms-go/internal/config"
	workerHandler "github.com/elearnhq/lessons-ms-go/internal/handler/worker"
	"github.com/elearnhq/lessons-ms-go/internal/logger"
	"github.com/elearnhq/lessons-ms-go/internal/staging"
	"github.com/elearnhq/lessons-ms-go/internal/task"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	stagingStore, err := staging.NewStore(cfg.StagingDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise staging dir: %v", err)
		os.Exit(1)
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSweepStaging, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSweepStagingPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SweepStagingHandler(ctx, p, stagingStore)
	})

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}

	scheduler := initScheduler(ctx, redisOpt, cfg.StagingSweepMaxAge)

	runWorker(ctx, mux, redisOpt, scheduler)
}

// initScheduler registers a periodic sweep so stale staged files get cleaned
// up even when no ingestion ever fails.
func initScheduler(ctx context.Context, redisOpt asynq.RedisClientOpt, maxAge time.Duration) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(redisOpt, nil)

	t, err := task.NewSweepStagingTask(maxAge)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to build sweep task: %v", err)
		os.Exit(1)
	}
	if _, err := scheduler.Register("@every 1h", t); err != nil {
		logger.Errorf(ctx, "❌  Failed to register periodic sweep: %v", err)
		os.Exit(1)
	}

	return scheduler
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, redisOpt asynq.RedisClientOpt, scheduler *asynq.Scheduler) {
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 10})

	// Run server and scheduler in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Errorf(context.Background(), "❌  Scheduler failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	scheduler.Shutdown()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
