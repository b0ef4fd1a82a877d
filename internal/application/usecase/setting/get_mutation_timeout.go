// Package setting contains runtime setting use cases.
package setting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// DefaultCacheTTL keeps cached settings short-lived so other instances see admin changes quickly.
const DefaultCacheTTL = 30 * time.Second

// GetMutationTimeoutOutput represents the effective record mutation timeout.
type GetMutationTimeoutOutput struct {
	TimeoutMs int64
	Stored    bool
	Bounds    entity.TimeoutBounds
}

// GetMutationTimeoutUseCase reads the record mutation timeout.
type GetMutationTimeoutUseCase struct {
	settingRepo adapter.SettingRepository
	cache       adapter.SettingCache
	bounds      entity.TimeoutBounds
	cacheTTL    time.Duration
}

// NewGetMutationTimeoutUseCase creates a new GetMutationTimeoutUseCase instance.
// cache may be nil.
func NewGetMutationTimeoutUseCase(
	settingRepo adapter.SettingRepository,
	cache adapter.SettingCache,
	bounds entity.TimeoutBounds,
	cacheTTL time.Duration,
) *GetMutationTimeoutUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &GetMutationTimeoutUseCase{
		settingRepo: settingRepo,
		cache:       cache,
		bounds:      bounds,
		cacheTTL:    cacheTTL,
	}
}

// Execute returns the stored timeout clamped to the configured bounds,
// or the default when nothing is stored.
func (uc *GetMutationTimeoutUseCase) Execute(ctx context.Context) (*GetMutationTimeoutOutput, error) {
	key := entity.RecordsMutationTimeoutKey

	if uc.cache != nil {
		value, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Setting cache read failed, falling back to database", "key", key, "error", err)
		} else if ok {
			return &GetMutationTimeoutOutput{TimeoutMs: uc.bounds.Clamp(value), Stored: true, Bounds: uc.bounds}, nil
		}
	}

	setting, err := uc.settingRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingNotFound) {
			return &GetMutationTimeoutOutput{TimeoutMs: uc.bounds.Clamp(uc.bounds.DefaultMs), Bounds: uc.bounds}, nil
		}
		return nil, fmt.Errorf("failed to read mutation timeout: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, setting.Value, uc.cacheTTL); err != nil {
			slog.Warn("Setting cache write failed", "key", key, "error", err)
		}
	}

	return &GetMutationTimeoutOutput{TimeoutMs: uc.bounds.Clamp(setting.Value), Stored: true, Bounds: uc.bounds}, nil
}

// MutationTimeout returns the timeout to apply to the next record mutation.
// A failing store yields the default so that mutations are never left unbounded.
func (uc *GetMutationTimeoutUseCase) MutationTimeout(ctx context.Context) time.Duration {
	out, err := uc.Execute(ctx)
	if err != nil {
		slog.Warn("Using default mutation timeout", "error", err)
		return time.Duration(uc.bounds.Clamp(uc.bounds.DefaultMs)) * time.Millisecond
	}
	return time.Duration(out.TimeoutMs) * time.Millisecond
}
