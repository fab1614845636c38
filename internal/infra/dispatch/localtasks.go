//go:build !gcloud

package dispatch

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"
)

// LocalTasksQueue talks to the local task-queue emulator over its
// Cloud-Tasks-shaped HTTP API. Used in development and load tests.
type LocalTasksQueue struct {
	baseURL    string
	queueName  string
	httpClient *http.Client
	maxRetries int
}

type localTaskRequest struct {
	Task localTask `json:"task"`
}

type localTask struct {
	HTTPRequest  localHTTPRequest `json:"httpRequest"`
	ScheduleTime string           `json:"scheduleTime,omitempty"`
	Name         string           `json:"name,omitempty"`
}

type localHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type localTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

func NewLocalTasksQueue(baseURL, queueName string, maxRetries int) *LocalTasksQueue {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &LocalTasksQueue{
		baseURL:   baseURL,
		queueName: queueName,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (q *LocalTasksQueue) RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error) {
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification task: %w", err)
	}

	encodedBody := base64.StdEncoding.EncodeToString(payload)

	localReq := localTaskRequest{
		Task: localTask{
			Name: task.RecordID,
			HTTPRequest: localHTTPRequest{
				Body: encodedBody,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
			},
		},
	}

	if !task.ScheduleAt.IsZero() {
		localReq.Task.ScheduleTime = task.ScheduleAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(localReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal emulator request: %w", err)
	}

	url := q.tasksURL()

	var lastErr error
	for attempt := 0; attempt < q.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying notification task registration",
				slog.String("record_id", task.RecordID),
				slog.String("plan_id", task.PlanID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := q.doRegister(ctx, url, reqBody, task)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for notification task registration",
		slog.String("record_id", task.RecordID),
		slog.String("plan_id", task.PlanID),
		slog.Int("max_retries", q.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register task after %d retries: %w", q.maxRetries, lastErr)
}

func (q *LocalTasksQueue) doRegister(ctx context.Context, url string, body []byte, task *NotificationTask) (*TaskResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var taskResp localTaskResponse
	if err := json.Unmarshal(respBody, &taskResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	slog.Info("notification task registered to local emulator",
		slog.String("task_name", taskResp.Name),
		slog.String("record_id", task.RecordID),
		slog.String("plan_id", task.PlanID),
	)

	result := &TaskResponse{Name: taskResp.Name}
	if taskResp.ScheduleTime != "" {
		if t, err := time.Parse(time.RFC3339, taskResp.ScheduleTime); err == nil {
			result.ScheduleTime = t
		}
	}
	if taskResp.CreateTime != "" {
		if t, err := time.Parse(time.RFC3339, taskResp.CreateTime); err == nil {
			result.CreateTime = t
		}
	}

	return result, nil
}

func (q *LocalTasksQueue) DeleteTask(ctx context.Context, taskID string) error {
	url := fmt.Sprintf("%s/%s", q.tasksURL(), taskID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := q.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		slog.Info("task not found in emulator (may have already fired)",
			slog.String("task_id", taskID),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.Info("task deleted from emulator",
		slog.String("task_id", taskID),
	)
	return nil
}

func (q *LocalTasksQueue) tasksURL() string {
	if q.queueName != "" && q.queueName != "default" {
		return fmt.Sprintf("%s/tasks/%s", q.baseURL, q.queueName)
	}
	return fmt.Sprintf("%s/tasks", q.baseURL)
}
