package domain

import "context"

//go:generate mockgen -source=repository.go -destination=mock.go -package=domain

// NotificationRepository persists scheduled notification rows for later
// delivery by the dispatch service. SaveBatch performs a single batch
// insert and does not deduplicate.
type NotificationRepository interface {
	SaveBatch(ctx context.Context, records []NotificationRecord) error
	ListByPlan(ctx context.Context, planID string) ([]NotificationRecord, error)
	DeleteByPlan(ctx context.Context, planID string) (int64, error)
}

// CoupleSettingsRepository exposes the couple's configured or
// device-inferred timezone. The scheduler treats the returned value as
// an opaque IANA zone identifier.
type CoupleSettingsRepository interface {
	GetEffectiveTimezone(ctx context.Context, coupleID string) (string, error)
	SetTimezone(ctx context.Context, coupleID, zone string) error
}
