// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// MutationOptions bounds a single record mutation.
type MutationOptions struct {
	// Timeout caps the whole transaction. Zero means no extra deadline.
	Timeout time.Duration
}

// RecordRepository defines the interface for record persistence operations.
//
// Create and Replace run inside one serializable transaction that re-checks the
// user's year labels before writing and fails with *domainerror.DuplicateYearConflict
// when the trimmed year label is already taken.
type RecordRepository interface {
	// Create inserts the record with all its categories and line items.
	Create(ctx context.Context, record *entity.Record, opts MutationOptions) error

	// Replace updates the record's scalar fields and replaces all of its children.
	Replace(ctx context.Context, record *entity.Record, opts MutationOptions) error

	// Delete removes the record and its children.
	Delete(ctx context.Context, id uuid.UUID, opts MutationOptions) error

	// FindByID retrieves a record with its categories and items ordered by sort order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error)

	// FindByUser lists a user's records, newest year first.
	FindByUser(ctx context.Context, userID string) ([]*entity.RecordSummary, error)

	// FindByUserAndYear finds the user's record whose trimmed year label equals yearLabel,
	// ignoring excludeID when set.
	FindByUserAndYear(ctx context.Context, userID, yearLabel string, excludeID *uuid.UUID) (*entity.RecordSummary, error)
}
