package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/identity"
)

// IntentDelete asks an update to remove the record instead.
const IntentDelete = "delete"

// UpdateRecordInput represents the input for record update.
type UpdateRecordInput struct {
	UserID   string
	RecordID uuid.UUID
	Intent   string
	Payload  *Payload
}

// UpdateRecordUseCase handles record update and the delete intent.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	timeouts   TimeoutProvider
	assignor   *identity.Assignor
	deleter    *DeleteRecordUseCase
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(
	recordRepo adapter.RecordRepository,
	timeouts TimeoutProvider,
	assignor *identity.Assignor,
	deleter *DeleteRecordUseCase,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		timeouts:   timeouts,
		assignor:   assignor,
		deleter:    deleter,
	}
}

// Execute replaces the record's fields and children, or deletes it for the delete intent.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*MutationOutput, error) {
	if input.Intent == IntentDelete {
		if err := uc.deleter.Execute(ctx, DeleteRecordInput{UserID: input.UserID, RecordID: input.RecordID}); err != nil {
			return nil, err
		}
		return &MutationOutput{RecordID: input.RecordID}, nil
	}

	if err := ValidatePayload(input.Payload); err != nil {
		return nil, err
	}

	rec, err := findOwned(ctx, uc.recordRepo, input.UserID, input.RecordID)
	if err != nil {
		return nil, err
	}

	// Fast path; the repository repeats this check inside the transaction.
	conflict, err := findConflict(ctx, uc.recordRepo, input.UserID, input.Payload.YearLabel, &rec.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check year label: %w", err)
	}
	if conflict != nil {
		return conflictOutput(conflict, input.UserID), nil
	}

	applyPayload(rec, input.Payload, uc.assignor)
	rec.UpdatedAt = time.Now().UTC()

	opts := adapter.MutationOptions{Timeout: uc.timeouts.MutationTimeout(ctx)}
	if err := uc.recordRepo.Replace(ctx, rec, opts); err != nil {
		return resolveMutationError(ctx, uc.recordRepo, input.UserID, rec.YearLabel, &rec.ID, "update", err)
	}

	return &MutationOutput{
		RecordID:  rec.ID,
		YearLabel: rec.YearLabel,
	}, nil
}
