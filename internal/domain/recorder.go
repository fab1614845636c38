package domain

import (
	"context"
	"time"
)

// ScheduleResultRecord summarises one scheduling batch for analysis.
type ScheduleResultRecord struct {
	PlanID          string
	CoupleID        string
	Timezone        string
	ScheduledCount  int
	DispatchedCount int
	Persisted       bool
	EventDate       string
	ScheduledAt     time.Time
}

// ScheduleResultRecorder records scheduling outcomes to an analytics sink.
// Recording is best-effort; implementations log and continue on write
// failure.
type ScheduleResultRecorder interface {
	RecordScheduleResult(ctx context.Context, record ScheduleResultRecord) error
	Flush(ctx context.Context) error
	Close() error
}
