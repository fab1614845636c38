// Package observability wires OpenTelemetry metrics and tracing plus the
// process logger. Exporter selection is per platform: OTLP over HTTP by
// default, Google Cloud exporters under the gcloud build tag.
package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/daydate-app/plan-notification-scheduling/internal/observability/logging"
)

type Config struct {
	ServiceName  string
	Version      string
	Environment  logging.Environment
	GCPProjectID string
	LogLevel     slog.Level
}

type Resources struct {
	logger        *slog.Logger
	meterProvider *sdkmetric.MeterProvider
	traceProvider *sdktrace.TracerProvider
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	var errs []error
	if r.traceProvider != nil {
		if err := r.traceProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func Init(ctx context.Context, cfg Config) (*Resources, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
			semconv.DeploymentEnvironment(string(cfg.Environment)),
		),
	)
	if err != nil {
		return nil, err
	}

	meterProvider, traceProvider, err := newProviders(ctx, cfg, res)
	if err != nil {
		return nil, err
	}

	if meterProvider != nil {
		otel.SetMeterProvider(meterProvider)
	}
	if traceProvider != nil {
		otel.SetTracerProvider(traceProvider)
	}

	return &Resources{
		logger:        logging.NewLogger(cfg.Environment, cfg.LogLevel),
		meterProvider: meterProvider,
		traceProvider: traceProvider,
	}, nil
}
