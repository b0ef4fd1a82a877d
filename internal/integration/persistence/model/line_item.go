package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// LineItemModel represents the record_line_items table in the database.
type LineItemModel struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CategoryID  uuid.UUID           `gorm:"type:uuid;not null;index"`
	Description string              `gorm:"type:varchar(500);not null"`
	Quantity    decimal.NullDecimal `gorm:"type:numeric(18,4)"`
	UnitPrice   decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	Amount      decimal.Decimal     `gorm:"type:numeric(18,2);not null;default:0"`
	SortOrder   int                 `gorm:"not null;default:0"`
	StableID    string              `gorm:"type:varchar(400);not null"`
}

// TableName returns the table name for the LineItemModel.
func (LineItemModel) TableName() string {
	return "record_line_items"
}

// ToEntity converts a LineItemModel to a domain LineItem entity.
func (m *LineItemModel) ToEntity() *entity.LineItem {
	return &entity.LineItem{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Quantity:    fromNullDecimal(m.Quantity),
		UnitPrice:   fromNullDecimal(m.UnitPrice),
		Amount:      m.Amount,
		SortOrder:   m.SortOrder,
		StableID:    m.StableID,
	}
}

// LineItemFromEntity creates a LineItemModel from a domain LineItem entity.
func LineItemFromEntity(item *entity.LineItem) *LineItemModel {
	return &LineItemModel{
		ID:          item.ID,
		CategoryID:  item.CategoryID,
		Description: item.Description,
		Quantity:    toNullDecimal(item.Quantity),
		UnitPrice:   toNullDecimal(item.UnitPrice),
		Amount:      item.Amount,
		SortOrder:   item.SortOrder,
		StableID:    item.StableID,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
