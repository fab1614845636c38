// Package dispatch registers scheduled notifications with the task queue
// that drives the delivery service. Registration is best-effort from the
// scheduling flow's point of view; failures are logged by callers and
// never block plan creation.
package dispatch

import (
	"context"
	"time"
)

//go:generate mockgen -source=dispatch.go -destination=mock.go -package=dispatch

// Queue hands notification tasks to the delivery pipeline. The task ID
// equals the notification record ID so cancellation can address tasks
// without extra bookkeeping.
type Queue interface {
	RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// NotificationTask is the payload the delivery service receives when the
// task fires.
type NotificationTask struct {
	RecordID   string    `json:"-"`
	CoupleID   string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	PlanID               string `json:"plan_id"`
	Type                 string `json:"type"`
	Title                string `json:"title"`
	Body                 string `json:"body"`
	IncludeAffiliateLink bool   `json:"include_affiliate_link"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}
