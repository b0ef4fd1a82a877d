// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/persistence/model"
)

const childBatchSize = 100

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create inserts the record and its children after re-checking the year label.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record, opts adapter.MutationOptions) error {
	return r.mutate(ctx, opts, func(tx *gorm.DB) error {
		if err := checkYearFree(tx, record.UserID, record.YearLabel, nil); err != nil {
			return err
		}
		if err := tx.Create(model.RecordFromEntity(record)).Error; err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
		return insertChildren(tx, record)
	})
}

// Replace updates the record's fields and recreates all of its children.
func (r *recordRepository) Replace(ctx context.Context, record *entity.Record, opts adapter.MutationOptions) error {
	return r.mutate(ctx, opts, func(tx *gorm.DB) error {
		if err := checkYearFree(tx, record.UserID, record.YearLabel, &record.ID); err != nil {
			return err
		}
		if err := deleteChildren(tx, record.ID); err != nil {
			return err
		}

		result := tx.Model(&model.RecordModel{}).
			Where("id = ? AND user_id = ?", record.ID, record.UserID).
			Updates(map[string]any{
				"year_label":       record.YearLabel,
				"calendar_type":    string(record.CalendarType),
				"total_assets":     record.TotalAssets,
				"total_deductions": record.TotalDeductions,
				"net_base":         record.NetBase,
				"rate":             record.Rate,
				"payable":          record.Payable,
				"updated_at":       record.UpdatedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("update record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecordNotFound
		}

		return insertChildren(tx, record)
	})
}

// Delete removes the record and its children.
func (r *recordRepository) Delete(ctx context.Context, id uuid.UUID, opts adapter.MutationOptions) error {
	return r.mutate(ctx, opts, func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&model.RecordModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("delete record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrRecordNotFound
		}
		return nil
	})
}

// FindByID retrieves a record with its categories and items.
func (r *recordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	db := r.db.WithContext(ctx)

	var recordModel model.RecordModel
	if err := db.Where("id = ?", id).First(&recordModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, err
	}
	record := recordModel.ToEntity()

	var categoryModels []model.CategoryModel
	if err := db.Where("record_id = ?", id).Order("sort_order ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	if len(categoryModels) == 0 {
		return record, nil
	}

	categoryIDs := make([]uuid.UUID, len(categoryModels))
	byID := make(map[uuid.UUID]*entity.Category, len(categoryModels))
	record.Categories = make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		c := cm.ToEntity()
		categoryIDs[i] = c.ID
		byID[c.ID] = c
		record.Categories[i] = c
	}

	var itemModels []model.LineItemModel
	if err := db.Where("category_id IN ?", categoryIDs).Order("sort_order ASC").Find(&itemModels).Error; err != nil {
		return nil, err
	}
	for _, im := range itemModels {
		if c, ok := byID[im.CategoryID]; ok {
			c.Items = append(c.Items, im.ToEntity())
		}
	}

	return record, nil
}

// FindByUser lists a user's records, newest year first.
func (r *recordRepository) FindByUser(ctx context.Context, userID string) ([]*entity.RecordSummary, error) {
	var recordModels []model.RecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.RecordSummary, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToSummary()
	}
	sortNewestYearFirst(records)
	return records, nil
}

// FindByUserAndYear finds the user's record holding the trimmed year label.
func (r *recordRepository) FindByUserAndYear(ctx context.Context, userID, yearLabel string, excludeID *uuid.UUID) (*entity.RecordSummary, error) {
	rm, err := findByYear(r.db.WithContext(ctx), userID, yearLabel, excludeID)
	if err != nil {
		return nil, err
	}
	return rm.ToSummary(), nil
}

// mutate runs fn in one transaction bounded by the configured timeout.
// PostgreSQL gets serializable isolation; SQLite transactions are serializable already.
func (r *recordRepository) mutate(ctx context.Context, opts adapter.MutationOptions, fn func(tx *gorm.DB) error) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var txOpts []*sql.TxOptions
	postgres := r.db.Dialector.Name() == "postgres"
	if postgres {
		txOpts = append(txOpts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if postgres && opts.Timeout > 0 {
			if err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", opts.Timeout.Milliseconds())).Error; err != nil {
				return fmt.Errorf("set statement timeout: %w", err)
			}
		}
		return fn(tx)
	}, txOpts...)
	if err == nil {
		return nil
	}

	if _, ok := domainerror.AsDuplicateYear(err); ok {
		return err
	}
	if errors.Is(err, domainerror.ErrRecordNotFound) {
		return err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || isStatementTimeout(err) {
		return fmt.Errorf("%w: %w", domainerror.ErrMutationTimeout, err)
	}
	if isSerializationFailure(err) {
		return fmt.Errorf("concurrent record write: %w", err)
	}
	return err
}

// checkYearFree fails with a DuplicateYearConflict when another record of the
// user already holds the trimmed year label.
func checkYearFree(tx *gorm.DB, userID, yearLabel string, excludeID *uuid.UUID) error {
	existing, err := findByYear(tx, userID, yearLabel, excludeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("check year label: %w", err)
	}
	return &domainerror.DuplicateYearConflict{
		YearLabel:        entity.NormalizeYearLabel(yearLabel),
		ExistingRecordID: existing.ID,
	}
}

func findByYear(db *gorm.DB, userID, yearLabel string, excludeID *uuid.UUID) (*model.RecordModel, error) {
	query := db.Where("user_id = ? AND TRIM(year_label) = ?", userID, entity.NormalizeYearLabel(yearLabel))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var rm model.RecordModel
	if err := query.Order("created_at ASC").First(&rm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func insertChildren(tx *gorm.DB, record *entity.Record) error {
	var categories []*model.CategoryModel
	var items []*model.LineItemModel
	for _, c := range record.Categories {
		c.RecordID = record.ID
		categories = append(categories, model.CategoryFromEntity(c))
		for _, it := range c.Items {
			it.CategoryID = c.ID
			items = append(items, model.LineItemFromEntity(it))
		}
	}

	if len(categories) > 0 {
		if err := tx.CreateInBatches(categories, childBatchSize).Error; err != nil {
			return fmt.Errorf("insert categories: %w", err)
		}
	}
	if len(items) > 0 {
		if err := tx.CreateInBatches(items, childBatchSize).Error; err != nil {
			return fmt.Errorf("insert line items: %w", err)
		}
	}
	return nil
}

func deleteChildren(tx *gorm.DB, recordID uuid.UUID) error {
	categoryIDs := tx.Session(&gorm.Session{NewDB: true}).
		Model(&model.CategoryModel{}).
		Select("id").
		Where("record_id = ?", recordID)
	if err := tx.Where("category_id IN (?)", categoryIDs).Delete(&model.LineItemModel{}).Error; err != nil {
		return fmt.Errorf("delete line items: %w", err)
	}
	if err := tx.Where("record_id = ?", recordID).Delete(&model.CategoryModel{}).Error; err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}
