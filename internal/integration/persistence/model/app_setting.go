package model

import (
	"time"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// AppSettingModel represents the app_settings table in the database.
type AppSettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     int64     `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AppSettingModel.
func (AppSettingModel) TableName() string {
	return "app_settings"
}

// ToEntity converts an AppSettingModel to a domain RuntimeSetting.
func (m *AppSettingModel) ToEntity() *entity.RuntimeSetting {
	return &entity.RuntimeSetting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

// AppSettingFromEntity creates an AppSettingModel from a domain RuntimeSetting.
func AppSettingFromEntity(setting *entity.RuntimeSetting) *AppSettingModel {
	return &AppSettingModel{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}

// AllModels lists every model in migration order.
func AllModels() []any {
	return []any{
		&RecordModel{},
		&CategoryModel{},
		&LineItemModel{},
		&AppSettingModel{},
	}
}
