// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/levy-tracker/backend/internal/application/usecase/record"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// ConflictDuplicateYear is the conflict discriminator returned with HTTP 409.
const ConflictDuplicateYear = "DUPLICATE_YEAR"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// RecordRequest represents the request body for creating or updating a record.
// Intent "delete" on update removes the record and ignores the rest of the body.
type RecordRequest struct {
	Intent       string                   `json:"intent,omitempty"`
	YearLabel    string                   `json:"yearLabel"`
	CalendarType string                   `json:"calendarType"`
	Categories   []record.CategoryPayload `json:"categories"`
}

// ToPayload converts the request into the use case payload.
func (r *RecordRequest) ToPayload() *record.Payload {
	return &record.Payload{
		YearLabel:    r.YearLabel,
		CalendarType: entity.CalendarType(r.CalendarType),
		Categories:   r.Categories,
	}
}

// ReconcileRequest represents the request body for the import preview.
type ReconcileRequest struct {
	Categories []record.CategoryPayload `json:"categories" binding:"required"`
}

// DuplicateRecordRequest represents the optional body for copying a record into a new year.
type DuplicateRecordRequest struct {
	YearLabel    string `json:"yearLabel,omitempty"`
	CalendarType string `json:"calendarType,omitempty" binding:"omitempty,oneof=ISLAMIC GREGORIAN"`
}

// MutationResponse represents a successful create or update.
type MutationResponse struct {
	RecordID  string `json:"recordId"`
	YearLabel string `json:"yearLabel,omitempty"`
}

// ConflictResponse represents a duplicate-year rejection.
type ConflictResponse struct {
	Conflict         string `json:"conflict"`
	YearLabel        string `json:"yearLabel"`
	ExistingRecordID string `json:"existingRecordId"`
	Error            string `json:"error"`
	Code             string `json:"code"`
}

// ToConflictResponse converts a DuplicateYearConflict to a ConflictResponse DTO.
func ToConflictResponse(c *domainerror.DuplicateYearConflict) ConflictResponse {
	return ConflictResponse{
		Conflict:         ConflictDuplicateYear,
		YearLabel:        c.YearLabel,
		ExistingRecordID: c.ExistingRecordID.String(),
		Error:            domainerror.ErrDuplicateYear.Error(),
		Code:             string(domainerror.ErrCodeDuplicateYear),
	}
}

// LineItemResponse represents a line item in API responses.
type LineItemResponse struct {
	ID          string           `json:"id"`
	StableID    string           `json:"stableId"`
	Description string           `json:"description"`
	Amount      decimal.Decimal  `json:"amount"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
}

// CategoryResponse represents a record category in API responses.
type CategoryResponse struct {
	ID       string             `json:"id"`
	StableID string             `json:"stableId"`
	Type     string             `json:"type"`
	NameEn   string             `json:"nameEn"`
	NameUr   string             `json:"nameUr"`
	Items    []LineItemResponse `json:"items"`
}

// RecordResponse represents a full record in API responses.
type RecordResponse struct {
	ID                 string             `json:"id"`
	YearLabel          string             `json:"yearLabel"`
	CalendarType       string             `json:"calendarType"`
	Currency           string             `json:"currency"`
	TotalAssets        decimal.Decimal    `json:"totalAssets"`
	TotalDeductions    decimal.Decimal    `json:"totalDeductions"`
	NetBase            decimal.Decimal    `json:"netBase"`
	Rate               decimal.Decimal    `json:"rate"`
	Payable            decimal.Decimal    `json:"payable"`
	ClonedFromRecordID *string            `json:"clonedFromRecordId,omitempty"`
	Categories         []CategoryResponse `json:"categories"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(r *entity.Record) RecordResponse {
	response := RecordResponse{
		ID:              r.ID.String(),
		YearLabel:       r.YearLabel,
		CalendarType:    string(r.CalendarType),
		Currency:        r.Currency,
		TotalAssets:     r.TotalAssets,
		TotalDeductions: r.TotalDeductions,
		NetBase:         r.NetBase,
		Rate:            r.Rate,
		Payable:         r.Payable,
		Categories:      make([]CategoryResponse, 0, len(r.Categories)),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}

	if r.ClonedFromRecordID != nil {
		id := r.ClonedFromRecordID.String()
		response.ClonedFromRecordID = &id
	}

	for _, c := range r.Categories {
		cr := CategoryResponse{
			ID:       c.ID.String(),
			StableID: c.StableID,
			Type:     string(c.Type),
			NameEn:   c.NameEn,
			NameUr:   c.NameUr,
			Items:    make([]LineItemResponse, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cr.Items = append(cr.Items, LineItemResponse{
				ID:          it.ID.String(),
				StableID:    it.StableID,
				Description: it.Description,
				Amount:      it.Amount,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		response.Categories = append(response.Categories, cr)
	}

	return response
}

// RecordSummaryResponse represents one row of the record list.
type RecordSummaryResponse struct {
	ID           string          `json:"id"`
	YearLabel    string          `json:"yearLabel"`
	CalendarType string          `json:"calendarType"`
	Currency     string          `json:"currency"`
	NetBase      decimal.Decimal `json:"netBase"`
	Payable      decimal.Decimal `json:"payable"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records []RecordSummaryResponse `json:"records"`
}

// ToRecordListResponse converts record summaries to a RecordListResponse DTO.
func ToRecordListResponse(summaries []*entity.RecordSummary) RecordListResponse {
	response := RecordListResponse{
		Records: make([]RecordSummaryResponse, 0, len(summaries)),
	}
	for _, s := range summaries {
		response.Records = append(response.Records, RecordSummaryResponse{
			ID:           s.ID.String(),
			YearLabel:    s.YearLabel,
			CalendarType: string(s.CalendarType),
			Currency:     s.Currency,
			NetBase:      s.NetBase,
			Payable:      s.Payable,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return response
}

// LayoutResponse represents categories reconciled onto the current template.
type LayoutResponse struct {
	TemplateVersion string                   `json:"templateVersion"`
	SourceRecordID  *string                  `json:"sourceRecordId,omitempty"`
	YearLabel       string                   `json:"yearLabel,omitempty"`
	CalendarType    string                   `json:"calendarType,omitempty"`
	Categories      []record.CategoryPayload `json:"categories"`
}

// ToLayoutResponse converts a LayoutOutput to a LayoutResponse DTO.
func ToLayoutResponse(output *record.LayoutOutput) LayoutResponse {
	payload := record.PayloadFromLayout(output.YearLabel, output.CalendarType, output.Categories)
	response := LayoutResponse{
		TemplateVersion: output.TemplateVersion,
		YearLabel:       output.YearLabel,
		CalendarType:    string(output.CalendarType),
		Categories:      payload.Categories,
	}
	if output.SourceRecordID != nil {
		id := output.SourceRecordID.String()
		response.SourceRecordID = &id
	}
	return response
}
