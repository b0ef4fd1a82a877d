package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/persistence/model"
)

// settingRepository implements the adapter.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance.
func NewSettingRepository(db *gorm.DB) adapter.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Get retrieves a setting by key.
func (r *settingRepository) Get(ctx context.Context, key string) (*entity.RuntimeSetting, error) {
	var settingModel model.AppSettingModel
	result := r.db.WithContext(ctx).Where(&model.AppSettingModel{Key: key}).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSettingNotFound
		}
		return nil, result.Error
	}
	return settingModel.ToEntity(), nil
}

// Upsert inserts the setting or overwrites its value.
func (r *settingRepository) Upsert(ctx context.Context, setting *entity.RuntimeSetting) error {
	settingModel := model.AppSettingFromEntity(setting)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(settingModel).Error
}
