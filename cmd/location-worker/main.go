// Command location-worker applies driver location pings from Kafka to running shifts.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"dispatch-platform/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildWorkerContainer(ctx)
	app.NewWorkerRunner().MustRun(container)
}
