package config

import (
	"os"
	"strconv"
)

const (
	dispatchTasksURLEnv  = "DISPATCH_TASKS_URL"
	dispatchQueueNameEnv = "DISPATCH_QUEUE_NAME"
	dispatchRetriesEnv   = "DISPATCH_MAX_RETRIES"

	defaultDispatchQueueName  = "default"
	defaultDispatchMaxRetries = 3
)

type DispatchConfig struct {
	// TasksURL is the local task-queue emulator base URL (non-gcloud builds).
	TasksURL  string
	QueueName string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string
	GCloudEndpoint   string

	MaxRetries int
}

func LoadDispatchConfig() DispatchConfig {
	queueName := os.Getenv(dispatchQueueNameEnv)
	if queueName == "" {
		queueName = defaultDispatchQueueName
	}

	maxRetries := defaultDispatchMaxRetries
	if v := os.Getenv(dispatchRetriesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return DispatchConfig{
		TasksURL:  os.Getenv(dispatchTasksURLEnv),
		QueueName: queueName,

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),
		GCloudEndpoint:   os.Getenv("GCLOUD_TASKS_ENDPOINT"),

		MaxRetries: maxRetries,
	}
}
