package record

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/domain/layout"
	"github.com/levy-tracker/backend/internal/domain/template"
)

// ReconcileInput carries categories of an older year or an older layout.
type ReconcileInput struct {
	Categories []CategoryPayload
}

// LayoutOutput is a set of categories mapped onto the current template.
type LayoutOutput struct {
	TemplateVersion string
	SourceRecordID  *uuid.UUID
	YearLabel       string
	CalendarType    entity.CalendarType
	Categories      []layout.Category
}

// ReconcileLayoutUseCase maps arbitrary categories onto the current template.
type ReconcileLayoutUseCase struct {
	reconciler *layout.Reconciler
	registry   *template.Registry
}

// NewReconcileLayoutUseCase creates a new ReconcileLayoutUseCase instance.
func NewReconcileLayoutUseCase(reconciler *layout.Reconciler, registry *template.Registry) *ReconcileLayoutUseCase {
	return &ReconcileLayoutUseCase{
		reconciler: reconciler,
		registry:   registry,
	}
}

// Execute reconciles the categories. Only category types are checked since
// everything else is tolerated and preserved.
func (uc *ReconcileLayoutUseCase) Execute(_ context.Context, input ReconcileInput) (*LayoutOutput, error) {
	var details []string
	for i, c := range input.Categories {
		if !c.Type.IsValid() {
			details = append(details, fmt.Sprintf("categories[%d].type: must be one of ASSET, LIABILITY", i))
		}
	}
	if len(details) > 0 {
		return nil, domainerror.NewValidationError(details)
	}

	return &LayoutOutput{
		TemplateVersion: uc.registry.Version(),
		Categories:      uc.reconciler.Reconcile(LayoutFromPayload(input.Categories)),
	}, nil
}

// GetRecordLayoutInput represents the input for the duplicate pre-fill.
type GetRecordLayoutInput struct {
	UserID   string
	RecordID uuid.UUID
}

// GetRecordLayoutUseCase reconciles a stored record onto the current template,
// producing the pre-fill for the next year.
type GetRecordLayoutUseCase struct {
	recordRepo adapter.RecordRepository
	reconciler *layout.Reconciler
	registry   *template.Registry
}

// NewGetRecordLayoutUseCase creates a new GetRecordLayoutUseCase instance.
func NewGetRecordLayoutUseCase(
	recordRepo adapter.RecordRepository,
	reconciler *layout.Reconciler,
	registry *template.Registry,
) *GetRecordLayoutUseCase {
	return &GetRecordLayoutUseCase{
		recordRepo: recordRepo,
		reconciler: reconciler,
		registry:   registry,
	}
}

// Execute loads the record and reconciles it. YearLabel is the suggested next year,
// empty when the source label is not a number.
func (uc *GetRecordLayoutUseCase) Execute(ctx context.Context, input GetRecordLayoutInput) (*LayoutOutput, error) {
	rec, err := findOwned(ctx, uc.recordRepo, input.UserID, input.RecordID)
	if err != nil {
		return nil, err
	}

	next, _ := NextYearLabel(rec.YearLabel)
	return &LayoutOutput{
		TemplateVersion: uc.registry.Version(),
		SourceRecordID:  &rec.ID,
		YearLabel:       next,
		CalendarType:    rec.CalendarType,
		Categories:      uc.reconciler.Reconcile(layout.FromRecord(rec)),
	}, nil
}

// NextYearLabel returns the label following a numeric year label.
func NextYearLabel(label string) (string, bool) {
	n, err := strconv.Atoi(entity.NormalizeYearLabel(label))
	if err != nil {
		return "", false
	}
	return strconv.Itoa(n + 1), true
}
