package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "schedule.service"
)

type ScheduleMetrics struct {
	notificationsScheduled metric.Int64Counter
	batchesProcessed       metric.Int64Counter
	persistFailures        metric.Int64Counter
	dispatchFailures       metric.Int64Counter
	scheduleDuration       metric.Float64Histogram
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	notificationsScheduled, err := meter.Int64Counter(
		"schedule_notifications_total",
		metric.WithDescription("Total number of notification records scheduled"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	batchesProcessed, err := meter.Int64Counter(
		"schedule_batches_total",
		metric.WithDescription("Total number of scheduling batches processed"),
		metric.WithUnit("{batch}"),
	)
	if err != nil {
		return nil, err
	}

	persistFailures, err := meter.Int64Counter(
		"schedule_persist_failures_total",
		metric.WithDescription("Total number of failed notification batch inserts"),
		metric.WithUnit("{batch}"),
	)
	if err != nil {
		return nil, err
	}

	dispatchFailures, err := meter.Int64Counter(
		"schedule_dispatch_failures_total",
		metric.WithDescription("Total number of failed dispatch task registrations"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	scheduleDuration, err := meter.Float64Histogram(
		"schedule_duration_seconds",
		metric.WithDescription("Time spent computing and persisting one scheduling batch"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		notificationsScheduled: notificationsScheduled,
		batchesProcessed:       batchesProcessed,
		persistFailures:        persistFailures,
		dispatchFailures:       dispatchFailures,
		scheduleDuration:       scheduleDuration,
	}, nil
}

func (m *ScheduleMetrics) RecordNotificationScheduled(ctx context.Context, notificationType string) {
	m.notificationsScheduled.Add(ctx, 1,
		metric.WithAttributes(attribute.String("type", notificationType)),
	)
}

func (m *ScheduleMetrics) RecordBatchProcessed(ctx context.Context, status string) {
	m.batchesProcessed.Add(ctx, 1,
		metric.WithAttributes(attribute.String("status", status)),
	)
}

func (m *ScheduleMetrics) RecordPersistFailure(ctx context.Context) {
	m.persistFailures.Add(ctx, 1)
}

func (m *ScheduleMetrics) RecordDispatchFailure(ctx context.Context) {
	m.dispatchFailures.Add(ctx, 1)
}

func (m *ScheduleMetrics) RecordScheduleDuration(ctx context.Context, d time.Duration) {
	m.scheduleDuration.Record(ctx, d.Seconds())
}
