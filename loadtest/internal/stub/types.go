package stub

import "time"

// taskRequest mirrors the Cloud-Tasks-shaped create request the service
// sends to the emulator.
type taskRequest struct {
	Task taskBody `json:"task"`
}

type taskBody struct {
	HTTPRequest  httpRequest `json:"httpRequest"`
	ScheduleTime string      `json:"scheduleTime,omitempty"`
	Name         string      `json:"name,omitempty"`
}

type httpRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type taskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

// NotificationPayload is the decoded task body, matching what the
// delivery service would receive when the task fires.
type NotificationPayload struct {
	PlanID               string `json:"plan_id"`
	Type                 string `json:"type"`
	Title                string `json:"title"`
	Body                 string `json:"body"`
	IncludeAffiliateLink bool   `json:"include_affiliate_link"`
}

// StoredTask is a registered task held in memory for inspection.
type StoredTask struct {
	Name         string              `json:"name"`
	Queue        string              `json:"queue"`
	ScheduleTime time.Time           `json:"schedule_time"`
	CreateTime   time.Time           `json:"create_time"`
	Payload      NotificationPayload `json:"payload"`
}

type TasksResponse struct {
	Tasks []StoredTask `json:"tasks"`
	Count int          `json:"count"`
}
