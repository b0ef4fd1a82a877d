package setting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// UpdateMutationTimeoutInput represents the input for changing the mutation timeout.
type UpdateMutationTimeoutInput struct {
	TimeoutMs int64
}

// UpdateMutationTimeoutOutput represents the output of changing the mutation timeout.
type UpdateMutationTimeoutOutput struct {
	TimeoutMs int64
	UpdatedAt time.Time
	Bounds    entity.TimeoutBounds
}

// UpdateMutationTimeoutUseCase stores a new record mutation timeout.
type UpdateMutationTimeoutUseCase struct {
	settingRepo adapter.SettingRepository
	cache       adapter.SettingCache
	bounds      entity.TimeoutBounds
}

// NewUpdateMutationTimeoutUseCase creates a new UpdateMutationTimeoutUseCase instance.
func NewUpdateMutationTimeoutUseCase(
	settingRepo adapter.SettingRepository,
	cache adapter.SettingCache,
	bounds entity.TimeoutBounds,
) *UpdateMutationTimeoutUseCase {
	return &UpdateMutationTimeoutUseCase{
		settingRepo: settingRepo,
		cache:       cache,
		bounds:      bounds,
	}
}

// Execute validates and persists the timeout. The next mutation picks it up.
func (uc *UpdateMutationTimeoutUseCase) Execute(ctx context.Context, input UpdateMutationTimeoutInput) (*UpdateMutationTimeoutOutput, error) {
	if !uc.bounds.Contains(input.TimeoutMs) {
		return nil, domainerror.NewSettingError(
			domainerror.ErrCodeTimeoutOutOfRange,
			fmt.Sprintf("timeout must be between %d and %d ms", uc.bounds.MinMs, uc.bounds.MaxMs),
			domainerror.ErrTimeoutOutOfRange,
		)
	}

	setting := &entity.RuntimeSetting{
		Key:       entity.RecordsMutationTimeoutKey,
		Value:     input.TimeoutMs,
		UpdatedAt: time.Now().UTC(),
	}
	if err := uc.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, fmt.Errorf("failed to store mutation timeout: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, setting.Key); err != nil {
			slog.Warn("Setting cache invalidation failed", "key", setting.Key, "error", err)
		}
	}

	slog.Info("Record mutation timeout updated", "timeoutMs", setting.Value)

	return &UpdateMutationTimeoutOutput{
		TimeoutMs: setting.Value,
		UpdatedAt: setting.UpdatedAt,
		Bounds:    uc.bounds,
	}, nil
}
