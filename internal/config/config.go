package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port            string
	LogLevel        slog.Level
	DefaultTimezone string
	Postgres        *PostgresConfig
	Redis           *RedisConfig
	Dispatch        DispatchConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// The product launched in Korea; couples without a stored timezone
	// fall back here.
	defaultTimezone := os.Getenv("DEFAULT_TIMEZONE")
	if defaultTimezone == "" {
		defaultTimezone = "Asia/Seoul"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	postgresConfig, err := LoadPostgresConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		DefaultTimezone: defaultTimezone,
		Postgres:        postgresConfig,
		Redis:           redisConfig,
		Dispatch:        LoadDispatchConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
