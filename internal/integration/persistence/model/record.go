// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             string          `gorm:"type:varchar(128);not null;index:idx_records_user_year"`
	YearLabel          string          `gorm:"type:varchar(32);not null;index:idx_records_user_year"`
	CalendarType       string          `gorm:"type:varchar(10);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	TotalAssets        decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	TotalDeductions    decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	NetBase            decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	Rate               decimal.Decimal `gorm:"type:numeric(8,4);not null"`
	Payable            decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	ClonedFromRecordID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity without children.
func (m *RecordModel) ToEntity() *entity.Record {
	return &entity.Record{
		ID:                 m.ID,
		UserID:             m.UserID,
		YearLabel:          m.YearLabel,
		CalendarType:       entity.CalendarType(m.CalendarType),
		Currency:           m.Currency,
		TotalAssets:        m.TotalAssets,
		TotalDeductions:    m.TotalDeductions,
		NetBase:            m.NetBase,
		Rate:               m.Rate,
		Payable:            m.Payable,
		ClonedFromRecordID: m.ClonedFromRecordID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToSummary converts a RecordModel to a RecordSummary.
func (m *RecordModel) ToSummary() *entity.RecordSummary {
	return &entity.RecordSummary{
		ID:           m.ID,
		YearLabel:    m.YearLabel,
		CalendarType: entity.CalendarType(m.CalendarType),
		Currency:     m.Currency,
		NetBase:      m.NetBase,
		Payable:      m.Payable,
		UpdatedAt:    m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	return &RecordModel{
		ID:                 record.ID,
		UserID:             record.UserID,
		YearLabel:          record.YearLabel,
		CalendarType:       string(record.CalendarType),
		Currency:           record.Currency,
		TotalAssets:        record.TotalAssets,
		TotalDeductions:    record.TotalDeductions,
		NetBase:            record.NetBase,
		Rate:               record.Rate,
		Payable:            record.Payable,
		ClonedFromRecordID: record.ClonedFromRecordID,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}
