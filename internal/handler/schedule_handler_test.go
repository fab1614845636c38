package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/daydate-app/plan-notification-scheduling/internal/service/plan"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := plan.NewService(nil, nil, nil, nil, nil, "Asia/Seoul")
	h := NewScheduleHandler(svc)

	router := gin.New()
	router.POST("/api/v1/plans/:planId/notifications", h.HandleSchedule)
	router.DELETE("/api/v1/plans/:planId/notifications", h.HandleCancel)
	return router
}

func TestHandleScheduleCreatesBatch(t *testing.T) {
	router := setupRouter(t)

	body := `{
		"couple_id": "couple-1",
		"title": "아이유 콘서트",
		"event_date": "2026-06-20",
		"ticket_open_date": "2026-05-01",
		"location_name": "올림픽공원"
	}`
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/plans/plan-1/notifications?now=2026-04-01T10:00:00Z",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp plan.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.PlanID != "plan-1" {
		t.Errorf("PlanID = %q, want plan-1", resp.PlanID)
	}
	if resp.ScheduledCount != 6 {
		t.Errorf("ScheduledCount = %d, want 6", resp.ScheduledCount)
	}
	if resp.Timezone != "Asia/Seoul" {
		t.Errorf("Timezone = %q, want Asia/Seoul", resp.Timezone)
	}
}

func TestHandleScheduleValidation(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		wantCode int
	}{
		{
			name:     "missing couple_id",
			target:   "/api/v1/plans/plan-1/notifications",
			body:     `{"title": "전시회", "event_date": "2026-06-20"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed event date",
			target:   "/api/v1/plans/plan-1/notifications",
			body:     `{"couple_id": "c", "title": "전시회", "event_date": "June 20"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed ticket open date",
			target:   "/api/v1/plans/plan-1/notifications",
			body:     `{"couple_id": "c", "title": "전시회", "event_date": "2026-06-20", "ticket_open_date": "soon"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid virtual time",
			target:   "/api/v1/plans/plan-1/notifications?now=yesterday",
			body:     `{"couple_id": "c", "title": "전시회", "event_date": "2026-06-20"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t)

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body %s", w.Code, tt.wantCode, w.Body.String())
			}

			var errResp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error == "" {
				t.Error("error response has empty code")
			}
		})
	}
}

func TestHandleScheduleTimezoneOverride(t *testing.T) {
	router := setupRouter(t)

	body := `{
		"couple_id": "couple-1",
		"title": "전시회",
		"event_date": "2026-06-20",
		"timezone": "Pacific/Auckland"
	}`
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/plans/plan-1/notifications?now=2026-04-01T10:00:00Z",
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp plan.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Timezone != "Pacific/Auckland" {
		t.Errorf("Timezone = %q, want Pacific/Auckland", resp.Timezone)
	}
}

func TestHandleCancel(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/plans/plan-1/notifications", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp plan.CancelResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.PlanID != "plan-1" {
		t.Errorf("PlanID = %q, want plan-1", resp.PlanID)
	}
}
