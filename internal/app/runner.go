package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"dispatch-platform/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API from a built container.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(code int)
}

// NewRunner returns a Runner that serves until the container context ends.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container. It returns
// on shutdown and exits the process on any other failure.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewJSONSlog(os.Stderr, "info")
	}
	return logger
}

type runIn struct {
	dig.In
	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
	Pool   *pgxpool.Pool
	Events eventsCloser `optional:"true"`
	Redis  redisCloser  `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(func(in runIn) error {
		errCh := make(chan error, 2)
		startServer(in.Server, in.Logger, "api", errCh)
		if in.Pprof != nil {
			startServer(in.Pprof, in.Logger, "pprof", errCh)
		}

		err := waitForShutdown(in.Ctx, in.Logger, errCh)

		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
		}
		closeResources(in)
		return err
	})
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("http server listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("%s listen: %w", name, err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger, errCh <-chan error) error {
	select {
	case <-ctx.Done():
		logger.Info("shutting down dispatch service")
		return ctx.Err()
	case err := <-errCh:
		logger.Error("server failed, shutting down", logx.Err(err))
		return err
	}
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(in runIn) {
	if in.Events != nil {
		if err := in.Events(); err != nil {
			in.Logger.Error("order events close error", logx.Err(err))
		}
	}
	if in.Redis != nil {
		if err := in.Redis(); err != nil {
			in.Logger.Error("redis close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	_ = in.Logger.Sync()
}
