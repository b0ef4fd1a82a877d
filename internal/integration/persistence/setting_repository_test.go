package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/persistence"
)

func TestSettingRepository(t *testing.T) {
	repo := persistence.NewSettingRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, entity.RecordsMutationTimeoutKey)
	require.ErrorIs(t, err, domainerror.ErrSettingNotFound)

	require.NoError(t, repo.Upsert(ctx, &entity.RuntimeSetting{
		Key: entity.RecordsMutationTimeoutKey, Value: 60000, UpdatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repo.Upsert(ctx, &entity.RuntimeSetting{
		Key: entity.RecordsMutationTimeoutKey, Value: 15000, UpdatedAt: time.Now().UTC(),
	}))

	got, err := repo.Get(ctx, entity.RecordsMutationTimeoutKey)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), got.Value)
}
