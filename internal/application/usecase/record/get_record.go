package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
)

// GetRecordInput represents the input for fetching one record.
type GetRecordInput struct {
	UserID   string
	RecordID uuid.UUID
}

// GetRecordUseCase returns a record with its categories and items.
type GetRecordUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewGetRecordUseCase creates a new GetRecordUseCase instance.
func NewGetRecordUseCase(recordRepo adapter.RecordRepository) *GetRecordUseCase {
	return &GetRecordUseCase{recordRepo: recordRepo}
}

// Execute fetches the record if it belongs to the user.
func (uc *GetRecordUseCase) Execute(ctx context.Context, input GetRecordInput) (*entity.Record, error) {
	return findOwned(ctx, uc.recordRepo, input.UserID, input.RecordID)
}

// ListRecordsUseCase lists a user's records.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{recordRepo: recordRepo}
}

// Execute returns record summaries, newest year first.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, userID string) ([]*entity.RecordSummary, error) {
	records, err := uc.recordRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
