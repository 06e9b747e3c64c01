package app

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"dispatch-platform/internal/logx"
	"dispatch-platform/internal/transport/kafka"
)

var errNoConsumer = errors.New("kafka consumer is nil: KAFKA_BROKERS, KAFKA_GROUP and the location topic must be set")

// WorkerRunner drives the location consumer until the container context ends.
type WorkerRunner struct {
	runFn func(*dig.Container) error
	exit  func(code int)
}

// NewWorkerRunner returns a WorkerRunner that exits the process on failure.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker, exit: os.Exit}
}

// MustRun returns quietly on cancellation and exits with status 1 otherwise.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	if errors.Is(err, context.Canceled) {
		logger.Info("location worker stopped")
		return
	}
	logger.Error("worker error", logx.Err(err))
	if r.exit != nil {
		r.exit(1)
	}
}

type workerIn struct {
	dig.In
	Ctx      context.Context
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Consumer *kafka.Consumer `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return consumeLocations(in.Ctx, in.Logger, in.Pool, in.Consumer)
	})
}

func consumeLocations(ctx context.Context, logger logx.Logger, pool *pgxpool.Pool, consumer *kafka.Consumer) error {
	if pool != nil {
		defer pool.Close()
	}
	defer func() { _ = logger.Sync() }()
	if consumer == nil {
		return errNoConsumer
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}()

	logger.Info("location worker started")
	return consumer.Run(ctx)
}
