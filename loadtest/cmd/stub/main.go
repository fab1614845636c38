package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/daydate-app/plan-notification-scheduling/loadtest/internal/stub"
)

// Task-queue emulator for local development and load tests. Speaks the
// same Cloud-Tasks-shaped HTTP API the service registers tasks against
// and keeps everything in memory for inspection.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	storage := stub.NewTaskStorage()
	handler := stub.NewHandler(storage)

	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/tasks", handler.HandleCreateTask)
	r.POST("/tasks/:queue", handler.HandleCreateTask)
	r.DELETE("/tasks/:queue", handler.HandleDeleteTask)
	r.DELETE("/tasks/:queue/:taskId", handler.HandleDeleteTask)
	r.GET("/tasks", handler.HandleListTasks)
	r.POST("/reset", handler.HandleReset)

	slog.Info("starting task queue stub", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("stub exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
