//go:build gcloud

package recorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt      time.Time `bigquery:"recorded_at"`
	PlanID          string    `bigquery:"plan_id"`
	CoupleID        string    `bigquery:"couple_id"`
	Timezone        string    `bigquery:"timezone"`
	EventDate       string    `bigquery:"event_date"`
	ScheduledCount  int64     `bigquery:"scheduled_count"`
	DispatchedCount int64     `bigquery:"dispatched_count"`
	Persisted       bool      `bigquery:"persisted"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ScheduleResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "schedule result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, schedule result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, schedule result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "schedule result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordScheduleResult(ctx context.Context, record domain.ScheduleResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:      time.Now(),
		PlanID:          record.PlanID,
		CoupleID:        record.CoupleID,
		Timezone:        record.Timezone,
		EventDate:       record.EventDate,
		ScheduledCount:  int64(record.ScheduledCount),
		DispatchedCount: int64(record.DispatchedCount),
		Persisted:       record.Persisted,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to write schedule result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("plan_id", record.PlanID),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	return r.client.Close()
}
