package domain

import (
	"time"
)

// NotificationType identifies which scheduling rule produced a record.
type NotificationType string

const (
	TypeTicketOpen   NotificationType = "ticket_open"
	TypeBookingNudge NotificationType = "booking_nudge"
	TypeD7           NotificationType = "d_7"
	TypeD3           NotificationType = "d_3"
	TypeD1           NotificationType = "d_1"
	TypeDDay         NotificationType = "d_day"
	TypePhotoNudge   NotificationType = "photo_nudge"
)

func (t NotificationType) String() string {
	return string(t)
}

// NotificationRecord is one future notification event computed for a plan.
// The scheduling core produces records without IDs; the orchestration layer
// assigns IDs before the batch is persisted and handed to dispatch.
type NotificationRecord struct {
	ID                   string           `json:"id,omitempty"`
	PlanID               string           `json:"plan_id"`
	Type                 NotificationType `json:"type"`
	ScheduledAt          time.Time        `json:"scheduled_at"`
	IncludeAffiliateLink bool             `json:"include_affiliate_link"`
	Title                string           `json:"title"`
	Body                 string           `json:"body"`
}
