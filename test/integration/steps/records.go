package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/levy-tracker/backend/internal/integration/persistence/model"
)

const recordBodyTemplate = `{
  "yearLabel": %q,
  "calendarType": "ISLAMIC",
  "categories": [
    {
      "stableId": "asset-cash",
      "nameEn": "Cash & bank accounts",
      "nameUr": "نقدی اور بینک اکاؤنٹس",
      "type": "ASSET",
      "items": [{"stableId": "asset-cash.cash", "description": "Cash", "amount": "1000"}]
    },
    {
      "nameEn": "Loans taken",
      "nameUr": "قرضے",
      "type": "LIABILITY",
      "items": [{"description": "Friend", "amount": "200"}]
    }
  ]
}`

// registerRecordSteps registers record seeding and database assertion steps.
func registerRecordSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I have a record for year "([^"]*)"$`, iHaveARecordForYear)
	ctx.Step(`^a stored record for "([^"]*)" has year label "([^"]*)"$`, aStoredRecordHasYearLabel)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values:$`, theDbShouldContainObjectsInWithTheValues)
}

func iHaveARecordForYear(ctx context.Context, yearLabel string) (context.Context, error) {
	ctx, err := sendRequest(ctx, http.MethodPost, "/api/v1/records", &godog.DocString{
		Content: fmt.Sprintf(recordBodyTemplate, yearLabel),
	})
	if err != nil {
		return ctx, err
	}
	if err := theResponseStatusShouldBe(ctx, http.StatusCreated); err != nil {
		return ctx, err
	}
	return ctx, nil
}

// aStoredRecordHasYearLabel writes a row directly, bypassing label normalization.
func aStoredRecordHasYearLabel(ctx context.Context, userID, yearLabel string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	now := time.Now().UTC()
	return tc.db.DbConn.Create(&model.RecordModel{
		ID:           uuid.New(),
		UserID:       userID,
		YearLabel:    yearLabel,
		CalendarType: "ISLAMIC",
		Currency:     "PKR",
		Rate:         decimal.RequireFromString("0.025"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	return countRows(ctx, quantity, table, nil)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return countRows(ctx, quantity, table, criteria)
}

func countRows(ctx context.Context, quantity int, table string, criteria map[string]any) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	entity, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := tc.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
