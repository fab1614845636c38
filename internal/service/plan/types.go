package plan

import (
	"time"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

// Request is one scheduling trigger: a plan just marked interested or
// booked.
type Request struct {
	CoupleID string
	Plan     domain.Plan
	// Timezone, when set, overrides the couple's stored setting.
	Timezone string
	// Now is the reference instant; handlers pass the real clock unless
	// a virtual time was requested.
	Now time.Time
}

type ResultItem struct {
	RecordID             string                  `json:"record_id"`
	Type                 domain.NotificationType `json:"type"`
	ScheduledAt          time.Time               `json:"scheduled_at"`
	IncludeAffiliateLink bool                    `json:"include_affiliate_link"`
	Dispatched           bool                    `json:"dispatched"`
}

type Response struct {
	PlanID          string       `json:"plan_id"`
	Timezone        string       `json:"timezone"`
	ScheduledCount  int          `json:"scheduled_count"`
	DispatchedCount int          `json:"dispatched_count"`
	Persisted       bool         `json:"persisted"`
	Results         []ResultItem `json:"results"`
}

type CancelResponse struct {
	PlanID           string `json:"plan_id"`
	DeletedRecords   int64  `json:"deleted_records"`
	CancelledTasks   int    `json:"cancelled_tasks"`
	TaskCancelErrors int    `json:"task_cancel_errors"`
}
