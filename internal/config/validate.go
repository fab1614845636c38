package config

import (
	"fmt"
	"time"
)

func ValidateForRun(cfg *Config) error {
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if err := cfg.Postgres.Validate(); err != nil {
		return err
	}
	if _, err := time.LoadLocation(cfg.DefaultTimezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDefaultZone, cfg.DefaultTimezone)
	}
	return nil
}
