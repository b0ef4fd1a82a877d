// Package cache implements short-lived caches backed by Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/levy-tracker/backend/internal/application/adapter"
)

const settingKeyPrefix = "levy:settings:"

// settingCache implements the adapter.SettingCache interface.
type settingCache struct {
	client *redis.Client
}

// NewSettingCache creates a new Redis-backed setting cache.
func NewSettingCache(client *redis.Client) adapter.SettingCache {
	return &settingCache{
		client: client,
	}
}

// Get returns the cached value and whether it was present.
func (c *settingCache) Get(ctx context.Context, key string) (int64, bool, error) {
	raw, err := c.client.Get(ctx, settingKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed cached setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value for ttl.
func (c *settingCache) Set(ctx context.Context, key string, value int64, ttl time.Duration) error {
	return c.client.Set(ctx, settingKeyPrefix+key, value, ttl).Err()
}

// Invalidate drops a cached value.
func (c *settingCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, settingKeyPrefix+key).Err()
}
