// Package store persists scheduled notification rows in Postgres. The
// delivery service reads due rows from the same table; this side only
// inserts, lists, and deletes.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
)

const insertBatchSize = 50

type notificationRow struct {
	ID                   string    `gorm:"primaryKey;size:36"`
	PlanID               string    `gorm:"size:64;not null;index:idx_plan_notifications_plan_id"`
	Type                 string    `gorm:"size:32;not null"`
	ScheduledAt          time.Time `gorm:"not null;index:idx_plan_notifications_scheduled_at"`
	IncludeAffiliateLink bool      `gorm:"not null"`
	Title                string    `gorm:"not null"`
	Body                 string    `gorm:"not null"`
	CreatedAt            time.Time
}

func (notificationRow) TableName() string {
	return "plan_notifications"
}

type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// Migrate creates or updates the plan_notifications table.
func (s *NotificationStore) Migrate() error {
	return s.db.AutoMigrate(&notificationRow{})
}

// SaveBatch inserts all records in one batched statement. Records without
// an ID get one assigned; no deduplication is performed.
func (s *NotificationStore) SaveBatch(ctx context.Context, records []domain.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]notificationRow, len(records))
	for i, r := range records {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}
		rows[i] = notificationRow{
			ID:                   id,
			PlanID:               r.PlanID,
			Type:                 r.Type.String(),
			ScheduledAt:          r.ScheduledAt.UTC(),
			IncludeAffiliateLink: r.IncludeAffiliateLink,
			Title:                r.Title,
			Body:                 r.Body,
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("insert notification batch: %w", err)
	}
	return nil
}

// ListByPlan returns the plan's stored records ordered by scheduled time.
func (s *NotificationStore) ListByPlan(ctx context.Context, planID string) ([]domain.NotificationRecord, error) {
	if planID == "" {
		return nil, domain.ErrEmptyPlanID
	}

	var rows []notificationRow
	err := s.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("scheduled_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list notifications for plan %s: %w", planID, err)
	}

	records := make([]domain.NotificationRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.NotificationRecord{
			ID:                   row.ID,
			PlanID:               row.PlanID,
			Type:                 domain.NotificationType(row.Type),
			ScheduledAt:          row.ScheduledAt.UTC(),
			IncludeAffiliateLink: row.IncludeAffiliateLink,
			Title:                row.Title,
			Body:                 row.Body,
		}
	}
	return records, nil
}

// DeleteByPlan removes all of the plan's rows and reports how many were
// deleted.
func (s *NotificationStore) DeleteByPlan(ctx context.Context, planID string) (int64, error) {
	if planID == "" {
		return 0, domain.ErrEmptyPlanID
	}

	result := s.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Delete(&notificationRow{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete notifications for plan %s: %w", planID, result.Error)
	}
	return result.RowsAffected, nil
}
