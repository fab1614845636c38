//go:build !gcloud

package dispatch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLocalTasksQueueRegisterNotification(t *testing.T) {
	var gotPath string
	var gotTask localTaskRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotTask); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(localTaskResponse{
			Name:         gotTask.Task.Name,
			ScheduleTime: gotTask.Task.ScheduleTime,
			CreateTime:   time.Now().UTC().Format(time.RFC3339),
		})
	}))
	defer srv.Close()

	q := NewLocalTasksQueue(srv.URL, "notifications", 3)

	scheduleAt := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	resp, err := q.RegisterNotification(context.Background(), &NotificationTask{
		RecordID:             "rec-1",
		PlanID:               "plan-1",
		Type:                 "d_day",
		Title:                "🎉 오늘이에요!",
		Body:                 "즐거운 시간 보내세요",
		IncludeAffiliateLink: false,
		ScheduleAt:           scheduleAt,
	})
	if err != nil {
		t.Fatalf("RegisterNotification() error = %v", err)
	}

	if gotPath != "/tasks/notifications" {
		t.Errorf("request path = %q, want /tasks/notifications", gotPath)
	}
	if resp.Name != "rec-1" {
		t.Errorf("response name = %q, want rec-1", resp.Name)
	}
	if gotTask.Task.ScheduleTime != scheduleAt.Format(time.RFC3339) {
		t.Errorf("scheduleTime = %q, want %q", gotTask.Task.ScheduleTime, scheduleAt.Format(time.RFC3339))
	}

	decoded, err := base64.StdEncoding.DecodeString(gotTask.Task.HTTPRequest.Body)
	if err != nil {
		t.Fatalf("task body is not base64: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(decoded, &payload); err != nil {
		t.Fatalf("task body is not JSON: %v", err)
	}
	if payload["plan_id"] != "plan-1" {
		t.Errorf("payload plan_id = %v, want plan-1", payload["plan_id"])
	}
	if payload["type"] != "d_day" {
		t.Errorf("payload type = %v, want d_day", payload["type"])
	}
}

func TestLocalTasksQueueRegisterRetriesOnFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(localTaskResponse{Name: "rec-1"})
	}))
	defer srv.Close()

	q := NewLocalTasksQueue(srv.URL, "default", 3)

	_, err := q.RegisterNotification(context.Background(), &NotificationTask{
		RecordID: "rec-1",
		PlanID:   "plan-1",
		Type:     "ticket_open",
	})
	if err != nil {
		t.Fatalf("RegisterNotification() error = %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestLocalTasksQueueDeleteTask(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "deleted", statusCode: http.StatusNoContent, wantErr: false},
		{name: "already fired", statusCode: http.StatusNotFound, wantErr: false},
		{name: "server error", statusCode: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			q := NewLocalTasksQueue(srv.URL, "default", 1)

			err := q.DeleteTask(context.Background(), "rec-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteTask() error = %v, wantErr %v", err, tt.wantErr)
			}
			if gotMethod != http.MethodDelete {
				t.Errorf("method = %q, want DELETE", gotMethod)
			}
			if gotPath != "/tasks/rec-1" {
				t.Errorf("path = %q, want /tasks/rec-1", gotPath)
			}
		})
	}
}
