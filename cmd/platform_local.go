//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/daydate-app/plan-notification-scheduling/internal/config"
	"github.com/daydate-app/plan-notification-scheduling/internal/infra/dispatch"
	"github.com/daydate-app/plan-notification-scheduling/internal/observability"
	"github.com/daydate-app/plan-notification-scheduling/internal/observability/logging"
)

func initDispatchQueue(_ context.Context, cfg *config.Config) (dispatch.Queue, func() error, error) {
	if cfg.Dispatch.TasksURL == "" {
		slog.Warn("DISPATCH_TASKS_URL not set, dispatch registration disabled")

		return nil, nil, nil
	}

	q := dispatch.NewLocalTasksQueue(
		cfg.Dispatch.TasksURL,
		cfg.Dispatch.QueueName,
		cfg.Dispatch.MaxRetries,
	)

	slog.Info("dispatch queue initialized",
		slog.String("type", "local_tasks"),
		slog.String("url", cfg.Dispatch.TasksURL),
		slog.String("queue", cfg.Dispatch.QueueName),
	)

	return q, nil, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "plan-notification-scheduling"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceName: serviceName,
		Version:     Version,
		Environment: env,
		LogLevel:    cfg.LogLevel,
	})
}
