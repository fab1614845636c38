package plan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
	"github.com/daydate-app/plan-notification-scheduling/internal/infra/dispatch"
	"github.com/daydate-app/plan-notification-scheduling/internal/observability/metrics"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/anchor"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/schedule"
)

type Service struct {
	notificationRepo domain.NotificationRepository
	settingsRepo     domain.CoupleSettingsRepository
	dispatchQueue    dispatch.Queue
	resultRecorder   domain.ScheduleResultRecorder
	scheduleMetrics  *metrics.ScheduleMetrics
	defaultZone      string
}

func NewService(
	notificationRepo domain.NotificationRepository,
	settingsRepo domain.CoupleSettingsRepository,
	dispatchQueue dispatch.Queue,
	resultRecorder domain.ScheduleResultRecorder,
	scheduleMetrics *metrics.ScheduleMetrics,
	defaultZone string,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		dispatchQueue:    dispatchQueue,
		resultRecorder:   resultRecorder,
		scheduleMetrics:  scheduleMetrics,
		defaultZone:      defaultZone,
	}
}

// ScheduleForPlan computes the notification batch for a plan, persists it,
// and registers the dispatch tasks. Persistence and dispatch failures are
// logged and absorbed so a trigger never fails after the batch itself was
// computed successfully.
func (s *Service) ScheduleForPlan(ctx context.Context, req Request) (*Response, error) {
	startedAt := time.Now()

	if req.Plan.ID == "" {
		return nil, domain.ErrEmptyPlanID
	}

	zone := s.resolveTimezone(ctx, req)
	resolver := s.resolverForZone(ctx, zone)

	records, err := schedule.New(resolver).Schedule(req.Plan, req.Now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute notification batch",
			slog.String("plan_id", req.Plan.ID),
			slog.String("error", err.Error()),
		)
		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordBatchProcessed(ctx, "invalid")
		}
		return nil, err
	}

	for i := range records {
		records[i].ID = uuid.New().String()
	}

	slog.DebugContext(ctx, "computed notification batch",
		slog.String("plan_id", req.Plan.ID),
		slog.String("timezone", resolver.Zone()),
		slog.Int("record_count", len(records)),
	)

	persisted := true
	if s.notificationRepo != nil {
		if err := s.notificationRepo.SaveBatch(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to persist notification batch",
				slog.String("plan_id", req.Plan.ID),
				slog.String("error", err.Error()),
			)
			persisted = false
			if s.scheduleMetrics != nil {
				s.scheduleMetrics.RecordPersistFailure(ctx)
			}
		}
	}

	results := make([]ResultItem, 0, len(records))
	dispatchedCount := 0

	for _, record := range records {
		dispatched := false
		if s.dispatchQueue != nil {
			task := &dispatch.NotificationTask{
				RecordID:             record.ID,
				CoupleID:             req.CoupleID,
				PlanID:               record.PlanID,
				Type:                 string(record.Type),
				Title:                record.Title,
				Body:                 record.Body,
				IncludeAffiliateLink: record.IncludeAffiliateLink,
				ScheduleAt:           record.ScheduledAt,
			}
			if _, err := s.dispatchQueue.RegisterNotification(ctx, task); err != nil {
				slog.WarnContext(ctx, "failed to register dispatch task",
					slog.String("record_id", record.ID),
					slog.String("type", string(record.Type)),
					slog.String("error", err.Error()),
				)
				if s.scheduleMetrics != nil {
					s.scheduleMetrics.RecordDispatchFailure(ctx)
				}
			} else {
				dispatched = true
				dispatchedCount++
			}
		}

		if s.scheduleMetrics != nil {
			s.scheduleMetrics.RecordNotificationScheduled(ctx, string(record.Type))
		}

		results = append(results, ResultItem{
			RecordID:             record.ID,
			Type:                 record.Type,
			ScheduledAt:          record.ScheduledAt,
			IncludeAffiliateLink: record.IncludeAffiliateLink,
			Dispatched:           dispatched,
		})
	}

	if s.resultRecorder != nil {
		record := domain.ScheduleResultRecord{
			PlanID:          req.Plan.ID,
			CoupleID:        req.CoupleID,
			Timezone:        resolver.Zone(),
			ScheduledCount:  len(records),
			DispatchedCount: dispatchedCount,
			Persisted:       persisted,
			EventDate:       req.Plan.EventDate,
			ScheduledAt:     req.Now,
		}
		if err := s.resultRecorder.RecordScheduleResult(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record schedule result",
				slog.String("plan_id", req.Plan.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.scheduleMetrics != nil {
		s.scheduleMetrics.RecordBatchProcessed(ctx, "success")
		s.scheduleMetrics.RecordScheduleDuration(ctx, time.Since(startedAt))
	}

	slog.InfoContext(ctx, "scheduling completed",
		slog.String("plan_id", req.Plan.ID),
		slog.String("timezone", resolver.Zone()),
		slog.Int("scheduled_count", len(records)),
		slog.Int("dispatched_count", dispatchedCount),
		slog.Bool("persisted", persisted),
	)

	return &Response{
		PlanID:          req.Plan.ID,
		Timezone:        resolver.Zone(),
		ScheduledCount:  len(records),
		DispatchedCount: dispatchedCount,
		Persisted:       persisted,
		Results:         results,
	}, nil
}

// CancelForPlan removes the stored batch for a plan and cancels its
// pending dispatch tasks. Task cancellation is best-effort; the stored
// records are deleted regardless.
func (s *Service) CancelForPlan(ctx context.Context, planID string) (*CancelResponse, error) {
	if planID == "" {
		return nil, domain.ErrEmptyPlanID
	}

	cancelledTasks := 0
	taskCancelErrors := 0

	if s.dispatchQueue != nil && s.notificationRepo != nil {
		records, err := s.notificationRepo.ListByPlan(ctx, planID)
		if err != nil {
			slog.WarnContext(ctx, "failed to list notifications for cancellation",
				slog.String("plan_id", planID),
				slog.String("error", err.Error()),
			)
		}
		for _, record := range records {
			if err := s.dispatchQueue.DeleteTask(ctx, record.ID); err != nil {
				slog.WarnContext(ctx, "failed to cancel dispatch task",
					slog.String("record_id", record.ID),
					slog.String("error", err.Error()),
				)
				taskCancelErrors++
				continue
			}
			cancelledTasks++
		}
	}

	var deleted int64
	if s.notificationRepo != nil {
		var err error
		deleted, err = s.notificationRepo.DeleteByPlan(ctx, planID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to delete notifications",
				slog.String("plan_id", planID),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	}

	slog.InfoContext(ctx, "cancellation completed",
		slog.String("plan_id", planID),
		slog.Int64("deleted_records", deleted),
		slog.Int("cancelled_tasks", cancelledTasks),
	)

	return &CancelResponse{
		PlanID:           planID,
		DeletedRecords:   deleted,
		CancelledTasks:   cancelledTasks,
		TaskCancelErrors: taskCancelErrors,
	}, nil
}

// resolveTimezone picks the zone for anchoring: an explicit request
// override wins, then the couple's stored setting, then the configured
// default.
func (s *Service) resolveTimezone(ctx context.Context, req Request) string {
	if req.Timezone != "" {
		return req.Timezone
	}

	if s.settingsRepo != nil && req.CoupleID != "" {
		zone, err := s.settingsRepo.GetEffectiveTimezone(ctx, req.CoupleID)
		if err != nil {
			slog.WarnContext(ctx, "failed to load couple timezone, using default",
				slog.String("couple_id", req.CoupleID),
				slog.String("error", err.Error()),
			)
		} else if zone != "" {
			return zone
		}
	}

	return s.defaultZone
}

// resolverForZone builds the anchor for the requested zone, falling back
// to the default zone and finally to UTC midnight when neither loads.
func (s *Service) resolverForZone(ctx context.Context, zone string) anchor.Resolver {
	resolver, err := anchor.ForZone(zone)
	if err == nil {
		return resolver
	}

	slog.WarnContext(ctx, "unknown timezone, falling back to default zone",
		slog.String("timezone", zone),
		slog.String("default_zone", s.defaultZone),
	)

	if zone != s.defaultZone {
		resolver, err = anchor.ForZone(s.defaultZone)
		if err == nil {
			return resolver
		}
	}

	slog.WarnContext(ctx, "default zone unavailable, anchoring to UTC midnight",
		slog.String("default_zone", s.defaultZone),
	)
	return anchor.UTC()
}
