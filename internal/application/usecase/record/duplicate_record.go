package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// DuplicateRecordInput represents the input for copying a record into a new year.
// Empty YearLabel means the year after the source; empty CalendarType keeps the source's.
type DuplicateRecordInput struct {
	UserID       string
	RecordID     uuid.UUID
	YearLabel    string
	CalendarType entity.CalendarType
}

// DuplicateRecordUseCase copies a record into a new year under the current template.
type DuplicateRecordUseCase struct {
	layouts *GetRecordLayoutUseCase
	creator *CreateRecordUseCase
}

// NewDuplicateRecordUseCase creates a new DuplicateRecordUseCase instance.
func NewDuplicateRecordUseCase(layouts *GetRecordLayoutUseCase, creator *CreateRecordUseCase) *DuplicateRecordUseCase {
	return &DuplicateRecordUseCase{
		layouts: layouts,
		creator: creator,
	}
}

// Execute reconciles the source record and creates the copy through the normal
// create path, so duplicate years are rejected the same way.
func (uc *DuplicateRecordUseCase) Execute(ctx context.Context, input DuplicateRecordInput) (*MutationOutput, error) {
	prefill, err := uc.layouts.Execute(ctx, GetRecordLayoutInput{UserID: input.UserID, RecordID: input.RecordID})
	if err != nil {
		return nil, err
	}

	yearLabel := entity.NormalizeYearLabel(input.YearLabel)
	if yearLabel == "" {
		yearLabel = prefill.YearLabel
	}
	if yearLabel == "" {
		return nil, domainerror.NewValidationError([]string{"yearLabel: required when the source year is not numeric"})
	}

	calendarType := input.CalendarType
	if calendarType == "" {
		calendarType = prefill.CalendarType
	}

	return uc.creator.Execute(ctx, CreateRecordInput{
		UserID:             input.UserID,
		Payload:            PayloadFromLayout(yearLabel, calendarType, prefill.Categories),
		ClonedFromRecordID: prefill.SourceRecordID,
	})
}
