package model

import (
	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the record_categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      string    `gorm:"type:varchar(10);not null"`
	NameEn    string    `gorm:"type:varchar(200);not null"`
	NameUr    string    `gorm:"type:varchar(200);not null"`
	SortOrder int       `gorm:"not null;default:0"`
	StableID  string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "record_categories"
}

// ToEntity converts a CategoryModel to a domain Category entity without items.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		RecordID:  m.RecordID,
		Type:      entity.CategoryType(m.Type),
		NameEn:    m.NameEn,
		NameUr:    m.NameUr,
		SortOrder: m.SortOrder,
		StableID:  m.StableID,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		RecordID:  category.RecordID,
		Type:      string(category.Type),
		NameEn:    category.NameEn,
		NameUr:    category.NameUr,
		SortOrder: category.SortOrder,
		StableID:  category.StableID,
	}
}
