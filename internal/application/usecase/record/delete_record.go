package record

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	UserID   string
	RecordID uuid.UUID
}

// DeleteRecordUseCase handles record deletion.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
	timeouts   TimeoutProvider
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository, timeouts TimeoutProvider) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
		timeouts:   timeouts,
	}
}

// Execute removes the record with all of its categories and items.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	rec, err := findOwned(ctx, uc.recordRepo, input.UserID, input.RecordID)
	if err != nil {
		return err
	}

	opts := adapter.MutationOptions{Timeout: uc.timeouts.MutationTimeout(ctx)}
	if err := uc.recordRepo.Delete(ctx, rec.ID, opts); err != nil {
		return classifyStorageError("delete", err)
	}

	slog.Info("Record deleted", "userID", input.UserID, "recordID", rec.ID, "yearLabel", rec.YearLabel)
	return nil
}
