package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daydate-app/plan-notification-scheduling/internal/domain"
	"github.com/daydate-app/plan-notification-scheduling/internal/service/plan"
)

type ScheduleHandler struct {
	planService *plan.Service
}

func NewScheduleHandler(planService *plan.Service) *ScheduleHandler {
	return &ScheduleHandler{
		planService: planService,
	}
}

type ScheduleRequest struct {
	CoupleID       string `json:"couple_id" binding:"required"`
	Title          string `json:"title" binding:"required"`
	EventDate      string `json:"event_date" binding:"required"`
	TicketOpenDate string `json:"ticket_open_date"`
	LocationName   string `json:"location_name"`
	Timezone       string `json:"timezone"`
}

// HandleSchedule computes and registers the notification batch for a plan.
// A `now` query parameter (RFC3339) substitutes a virtual reference time
// for load tests and replays.
func (h *ScheduleHandler) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()
	planID := c.Param("planId")

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var now time.Time
	if nowStr := c.Query("now"); nowStr != "" {
		parsed, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_request", "invalid now time format, expected RFC3339")
			return
		}
		now = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", now),
		)
	} else {
		now = time.Now()
	}

	resp, err := h.planService.ScheduleForPlan(ctx, plan.Request{
		CoupleID: req.CoupleID,
		Plan: domain.Plan{
			ID:             planID,
			Title:          req.Title,
			EventDate:      req.EventDate,
			TicketOpenDate: req.TicketOpenDate,
			LocationName:   req.LocationName,
		},
		Timezone: req.Timezone,
		Now:      now,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEventDate),
			errors.Is(err, domain.ErrInvalidTicketOpenDate),
			errors.Is(err, domain.ErrEmptyPlanID):
			respondError(c, http.StatusBadRequest, "invalid_plan", err.Error())
		default:
			slog.ErrorContext(ctx, "scheduling failed",
				slog.String("plan_id", planID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// HandleCancel removes the stored batch for a plan and cancels the
// pending dispatch tasks.
func (h *ScheduleHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()
	planID := c.Param("planId")

	resp, err := h.planService.CancelForPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPlanID) {
			respondError(c, http.StatusBadRequest, "invalid_plan", err.Error())
			return
		}
		slog.ErrorContext(ctx, "cancellation failed",
			slog.String("plan_id", planID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
