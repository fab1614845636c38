package stub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	storage *TaskStorage
}

func NewHandler(storage *TaskStorage) *Handler {
	return &Handler{storage: storage}
}

// POST /tasks and POST /tasks/:queue
func (h *Handler) HandleCreateTask(c *gin.Context) {
	queue := c.Param("queue")
	if queue == "" {
		queue = "default"
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Task.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task name is required"})
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task body must be base64 encoded"})
		return
	}

	var payload NotificationPayload
	if err := json.Unmarshal(decoded, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload: " + err.Error()})
		return
	}

	now := time.Now().UTC()
	scheduleTime := now
	if req.Task.ScheduleTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.Task.ScheduleTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scheduleTime: " + req.Task.ScheduleTime})
			return
		}
		scheduleTime = parsed
	}

	h.storage.Put(StoredTask{
		Name:         req.Task.Name,
		Queue:        queue,
		ScheduleTime: scheduleTime,
		CreateTime:   now,
		Payload:      payload,
	})

	slog.Info("task registered",
		slog.String("task_name", req.Task.Name),
		slog.String("queue", queue),
		slog.String("type", payload.Type),
		slog.Time("schedule_time", scheduleTime),
	)

	c.JSON(http.StatusCreated, taskResponse{
		Name:         req.Task.Name,
		ScheduleTime: scheduleTime.Format(time.RFC3339),
		CreateTime:   now.Format(time.RFC3339),
	})
}

// DELETE /tasks/:queue (segment is the task ID on the default queue)
// and DELETE /tasks/:queue/:taskId
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		taskID = c.Param("queue")
	}

	if !h.storage.Delete(taskID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	slog.Info("task deleted", slog.String("task_name", taskID))

	c.Status(http.StatusNoContent)
}

// GET /tasks?queue=...&plan_id=...
func (h *Handler) HandleListTasks(c *gin.Context) {
	tasks := h.storage.List(c.Query("queue"), c.Query("plan_id"))

	c.JSON(http.StatusOK, TasksResponse{
		Tasks: tasks,
		Count: len(tasks),
	})
}

// POST /reset
func (h *Handler) HandleReset(c *gin.Context) {
	h.storage.ResetAll()

	slog.Info("reset tasks")

	c.JSON(http.StatusOK, gin.H{"status": "reset complete"})
}
