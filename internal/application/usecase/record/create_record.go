package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/identity"
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	UserID             string
	Payload            *Payload
	ClonedFromRecordID *uuid.UUID
}

// CreateRecordUseCase handles record creation.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	timeouts   TimeoutProvider
	assignor   *identity.Assignor
	currency   string
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.RecordRepository,
	timeouts TimeoutProvider,
	assignor *identity.Assignor,
	currency string,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		timeouts:   timeouts,
		assignor:   assignor,
		currency:   currency,
	}
}

// Execute validates the payload and writes the record with its children in one
// transaction. A year label already used by the user yields a conflict outcome.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*MutationOutput, error) {
	if err := ValidatePayload(input.Payload); err != nil {
		return nil, err
	}

	rec := entity.NewRecord(input.UserID, input.Payload.YearLabel, input.Payload.CalendarType, uc.currency)
	rec.ClonedFromRecordID = input.ClonedFromRecordID
	applyPayload(rec, input.Payload, uc.assignor)

	opts := adapter.MutationOptions{Timeout: uc.timeouts.MutationTimeout(ctx)}
	if err := uc.recordRepo.Create(ctx, rec, opts); err != nil {
		return resolveMutationError(ctx, uc.recordRepo, input.UserID, rec.YearLabel, nil, "create", err)
	}

	return &MutationOutput{
		RecordID:  rec.ID,
		YearLabel: rec.YearLabel,
	}, nil
}
