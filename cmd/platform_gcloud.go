//go:build gcloud

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

func initDispatchQueue(ctx context.Context, cfg *config.Config) (dispatch.Queue, func() error, error) {
	q, err := dispatch.NewCloudTasksQueue(ctx, dispatch.CloudTasksConfig{
		ProjectID:  cfg.Dispatch.GCloudProjectID,
		LocationID: cfg.Dispatch.GCloudLocationID,
		QueueID:    cfg.Dispatch.GCloudQueueID,
		TargetURL:  cfg.Dispatch.GCloudTargetURL,
		Endpoint:   cfg.Dispatch.GCloudEndpoint,
		MaxRetries: cfg.Dispatch.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("dispatch queue initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.Dispatch.GCloudProjectID),
		slog.String("location", cfg.Dispatch.GCloudLocationID),
		slog.String("queue", cfg.Dispatch.GCloudQueueID),
	)

	cleanup := func() error {
		if err := q.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return q, cleanup, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "plan-notification-scheduling"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceName:  serviceName,
		Version:      Version,
		Environment:  env,
		GCPProjectID: projectID,
		LogLevel:     cfg.LogLevel,
	})
}
