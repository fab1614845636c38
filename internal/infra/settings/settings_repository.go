// Package settings caches couple preferences in Redis. The mobile
// backend owns the authoritative copy; this cache keeps timezone lookup
// off the scheduling hot path.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	settingsKeyPrefix = "couple:settings:"

	settingsTTL = 24 * time.Hour
)

var ErrInvalidSettingsData = errors.New("invalid settings data")

type settingsRecord struct {
	Timezone  string    `json:"timezone"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository struct {
	client *redis.Client
}

func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// GetEffectiveTimezone returns the couple's configured timezone, or an
// empty string when nothing is cached. Callers fall back to the default
// zone on empty or error.
func (r *Repository) GetEffectiveTimezone(ctx context.Context, coupleID string) (string, error) {
	key := settingsKeyPrefix + coupleID

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get settings for couple %s: %w", coupleID, err)
	}

	var record settingsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", ErrInvalidSettingsData
	}

	return record.Timezone, nil
}

// SetTimezone caches the couple's timezone with a refreshed TTL.
func (r *Repository) SetTimezone(ctx context.Context, coupleID, zone string) error {
	key := settingsKeyPrefix + coupleID

	record := settingsRecord{
		Timezone:  zone,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidSettingsData
	}

	return r.client.Set(ctx, key, data, settingsTTL).Err()
}
