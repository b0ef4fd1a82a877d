package adapter

import (
	"context"
	"time"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// SettingRepository defines the interface for runtime setting persistence.
type SettingRepository interface {
	// Get returns the stored setting or domainerror.ErrSettingNotFound.
	Get(ctx context.Context, key string) (*entity.RuntimeSetting, error)

	// Upsert stores the setting, replacing any previous value.
	Upsert(ctx context.Context, setting *entity.RuntimeSetting) error
}

// SettingCache is a short-lived read-through cache in front of SettingRepository.
type SettingCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (int64, bool, error)

	// Set stores a value for ttl.
	Set(ctx context.Context, key string, value int64, ttl time.Duration) error

	// Invalidate drops a cached value.
	Invalidate(ctx context.Context, key string) error
}
