package record

import (
	"strings"

	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/identity"
	"github.com/levy-tracker/backend/internal/domain/valueobject"
)

// applyPayload replaces the record's categories with the payload's, assigns stable
// ids and recomputes totals. Stable ids are unique within the record and within
// each category.
func applyPayload(rec *entity.Record, p *Payload, assignor *identity.Assignor) {
	rec.YearLabel = entity.NormalizeYearLabel(p.YearLabel)
	rec.CalendarType = p.CalendarType
	rec.Categories = make([]*entity.Category, 0, len(p.Categories))

	categoryIDs := make(map[string]struct{}, len(p.Categories))
	for ci, cp := range p.Categories {
		stableID := assignor.AssignCategoryID(identity.CategoryRef{
			StableID: cp.StableID,
			Type:     cp.Type,
			NameEn:   cp.NameEn,
			NameUr:   cp.NameUr,
		}, ci)

		category := &entity.Category{
			ID:        uuid.New(),
			RecordID:  rec.ID,
			Type:      cp.Type,
			NameEn:    strings.TrimSpace(cp.NameEn),
			NameUr:    strings.TrimSpace(cp.NameUr),
			SortOrder: ci,
			StableID:  identity.EnsureUnique(stableID, categoryIDs),
			Items:     make([]*entity.LineItem, 0, len(cp.Items)),
		}

		itemIDs := make(map[string]struct{}, len(cp.Items))
		for ii, ip := range cp.Items {
			itemID := assignor.AssignItemID(identity.ItemRef{
				StableID:    ip.StableID,
				Description: ip.Description,
			}, category.StableID, ii)

			category.Items = append(category.Items, &entity.LineItem{
				ID:          uuid.New(),
				CategoryID:  category.ID,
				Description: strings.TrimSpace(ip.Description),
				Quantity:    ip.Quantity,
				UnitPrice:   ip.UnitPrice,
				Amount:      ip.Amount,
				SortOrder:   ii,
				StableID:    identity.EnsureUnique(itemID, itemIDs),
			})
		}

		rec.Categories = append(rec.Categories, category)
	}

	totals := valueobject.CalculateRecordLevy(rec)
	rec.TotalAssets = totals.TotalAssets
	rec.TotalDeductions = totals.TotalDeductions
	rec.NetBase = totals.NetBase
	rec.Rate = totals.Rate
	rec.Payable = totals.Payable
}
