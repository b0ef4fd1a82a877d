// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalendarType selects the day-count basis a record was computed on.
type CalendarType string

const (
	CalendarTypeIslamic   CalendarType = "ISLAMIC"
	CalendarTypeGregorian CalendarType = "GREGORIAN"
)

// IsValid reports whether the calendar type is one of the known values.
func (c CalendarType) IsValid() bool {
	return c == CalendarTypeIslamic || c == CalendarTypeGregorian
}

// CategoryType tells whether a category holds assets or deductible liabilities.
type CategoryType string

const (
	CategoryTypeAsset     CategoryType = "ASSET"
	CategoryTypeLiability CategoryType = "LIABILITY"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeAsset || t == CategoryTypeLiability
}

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "PKR"

// Record is one user's snapshot for a single fiscal year.
type Record struct {
	ID                 uuid.UUID
	UserID             string
	YearLabel          string
	CalendarType       CalendarType
	Currency           string
	TotalAssets        decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetBase            decimal.Decimal
	Rate               decimal.Decimal
	Payable            decimal.Decimal
	ClonedFromRecordID *uuid.UUID
	Categories         []*Category
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Category groups line items of the same type inside a record.
type Category struct {
	ID        uuid.UUID
	RecordID  uuid.UUID
	Type      CategoryType
	NameEn    string
	NameUr    string
	SortOrder int
	StableID  string
	Items     []*LineItem
}

// LineItem is a single amount within a category.
type LineItem struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Description string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
	Amount      decimal.Decimal
	SortOrder   int
	StableID    string
}

// NewRecord creates a new Record entity with a fresh ID and timestamps.
// The year label is stored trimmed; uniqueness is compared on the trimmed value.
func NewRecord(userID, yearLabel string, calendarType CalendarType, currency string) *Record {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Record{
		ID:           uuid.New(),
		UserID:       userID,
		YearLabel:    NormalizeYearLabel(yearLabel),
		CalendarType: calendarType,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NormalizeYearLabel returns the comparable form of a year label.
func NormalizeYearLabel(label string) string {
	return strings.TrimSpace(label)
}

// SameYear reports whether two year labels denote the same fiscal year.
func SameYear(a, b string) bool {
	return NormalizeYearLabel(a) == NormalizeYearLabel(b)
}

// CategoriesOfType returns the record's categories of the given type, in order.
func (r *Record) CategoriesOfType(t CategoryType) []*Category {
	out := make([]*Category, 0, len(r.Categories))
	for _, c := range r.Categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// RecordSummary is a lightweight row used for listing and duplicate-year checks.
type RecordSummary struct {
	ID           uuid.UUID
	YearLabel    string
	CalendarType CalendarType
	Currency     string
	NetBase      decimal.Decimal
	Payable      decimal.Decimal
	UpdatedAt    time.Time
}
