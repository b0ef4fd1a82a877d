package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

// TimeoutProvider supplies the bound for the next record mutation.
type TimeoutProvider interface {
	MutationTimeout(ctx context.Context) time.Duration
}

// MutationOutput is the outcome of a create or update. Exactly one of RecordID or
// Conflict is meaningful.
type MutationOutput struct {
	RecordID  uuid.UUID
	YearLabel string
	Conflict  *domainerror.DuplicateYearConflict
}

func conflictOutput(conflict *domainerror.DuplicateYearConflict, userID string) *MutationOutput {
	slog.Info("Duplicate year rejected",
		"userID", userID,
		"yearLabel", conflict.YearLabel,
		"existingRecordID", conflict.ExistingRecordID,
	)
	return &MutationOutput{YearLabel: conflict.YearLabel, Conflict: conflict}
}

// findConflict looks for another record of the user holding the year label.
func findConflict(ctx context.Context, repo adapter.RecordRepository, userID, yearLabel string, excludeID *uuid.UUID) (*domainerror.DuplicateYearConflict, error) {
	existing, err := repo.FindByUserAndYear(ctx, userID, yearLabel, excludeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domainerror.DuplicateYearConflict{
		YearLabel:        entity.NormalizeYearLabel(yearLabel),
		ExistingRecordID: existing.ID,
	}, nil
}

// resolveMutationError turns a failed write into either a conflict outcome or a
// coded error. A failed transaction is followed by one more duplicate lookup since
// a concurrent writer for the same year makes the transaction fail on commit.
func resolveMutationError(
	ctx context.Context,
	repo adapter.RecordRepository,
	userID, yearLabel string,
	excludeID *uuid.UUID,
	op string,
	err error,
) (*MutationOutput, error) {
	if conflict, ok := domainerror.AsDuplicateYear(err); ok {
		return conflictOutput(conflict, userID), nil
	}

	if conflict, lookupErr := findConflict(ctx, repo, userID, yearLabel, excludeID); lookupErr == nil && conflict != nil {
		return conflictOutput(conflict, userID), nil
	}

	return nil, classifyStorageError(op, err)
}

func classifyStorageError(op string, err error) error {
	switch {
	case errors.Is(err, domainerror.ErrRecordNotFound):
		return notFoundError()
	case errors.Is(err, domainerror.ErrMutationTimeout), errors.Is(err, context.DeadlineExceeded):
		slog.Error("Record mutation timed out", "operation", op, "error", err)
		return domainerror.NewRecordError(
			domainerror.ErrCodeMutationTimeout,
			"record mutation timed out",
			fmt.Errorf("%w: %w", domainerror.ErrMutationTimeout, err),
		)
	default:
		slog.Error("Record mutation failed", "operation", op, "error", err)
		return domainerror.NewRecordError(
			domainerror.ErrCodeStorageFailure,
			fmt.Sprintf("failed to %s record", op),
			fmt.Errorf("%w: %w", domainerror.ErrStorageFailure, err),
		)
	}
}

func notFoundError() error {
	return domainerror.NewRecordError(
		domainerror.ErrCodeRecordNotFound,
		"record not found",
		domainerror.ErrRecordNotFound,
	)
}

// findOwned loads a record and hides records of other users behind not-found.
func findOwned(ctx context.Context, repo adapter.RecordRepository, userID string, id uuid.UUID) (*entity.Record, error) {
	rec, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}
	if rec.UserID != userID {
		return nil, notFoundError()
	}
	return rec, nil
}
