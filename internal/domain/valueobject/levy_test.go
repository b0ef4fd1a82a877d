package valueobject

import (
	"testing"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func category(t entity.CategoryType, amounts ...string) *entity.Category {
	c := &entity.Category{Type: t}
	for _, a := range amounts {
		c.Items = append(c.Items, &entity.LineItem{Amount: decimal.RequireFromString(a)})
	}
	return c
}

func TestCalculateLevy(t *testing.T) {
	tests := []struct {
		name        string
		calendar    entity.CalendarType
		assets      []*entity.Category
		liabilities []*entity.Category
		wantNet     string
		wantRate    string
		wantPayable string
	}{
		{
			name:        "islamic rate",
			calendar:    entity.CalendarTypeIslamic,
			assets:      []*entity.Category{category(entity.CategoryTypeAsset, "600", "400")},
			liabilities: []*entity.Category{category(entity.CategoryTypeLiability, "200")},
			wantNet:     "800",
			wantRate:    "0.025",
			wantPayable: "20",
		},
		{
			name:        "gregorian rate",
			calendar:    entity.CalendarTypeGregorian,
			assets:      []*entity.Category{category(entity.CategoryTypeAsset, "1000")},
			liabilities: []*entity.Category{category(entity.CategoryTypeLiability, "150", "50")},
			wantNet:     "800",
			wantRate:    "0.0258",
			wantPayable: "20.64",
		},
		{
			name:        "negative net base pays nothing",
			calendar:    entity.CalendarTypeIslamic,
			assets:      []*entity.Category{category(entity.CategoryTypeAsset, "100")},
			liabilities: []*entity.Category{category(entity.CategoryTypeLiability, "500")},
			wantNet:     "-400",
			wantRate:    "0.025",
			wantPayable: "0",
		},
		{
			name:        "empty input",
			calendar:    entity.CalendarTypeGregorian,
			wantNet:     "0",
			wantRate:    "0.0258",
			wantPayable: "0",
		},
		{
			name:        "nil categories and items are skipped",
			calendar:    entity.CalendarTypeIslamic,
			assets:      []*entity.Category{nil, {Items: []*entity.LineItem{nil, {Amount: decimal.NewFromInt(40)}}}},
			wantNet:     "40",
			wantRate:    "0.025",
			wantPayable: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateLevy(LevyInput{
				CalendarType:        tt.calendar,
				AssetCategories:     tt.assets,
				LiabilityCategories: tt.liabilities,
			})

			if !got.NetBase.Equal(decimal.RequireFromString(tt.wantNet)) {
				t.Errorf("NetBase = %s, want %s", got.NetBase, tt.wantNet)
			}
			if !got.Rate.Equal(decimal.RequireFromString(tt.wantRate)) {
				t.Errorf("Rate = %s, want %s", got.Rate, tt.wantRate)
			}
			if !got.Payable.Equal(decimal.RequireFromString(tt.wantPayable)) {
				t.Errorf("Payable = %s, want %s", got.Payable, tt.wantPayable)
			}
			if got.Payable.IsNegative() {
				t.Errorf("Payable is negative: %s", got.Payable)
			}
		})
	}
}

func TestCalculateLevyIsPure(t *testing.T) {
	in := LevyInput{
		CalendarType:        entity.CalendarTypeGregorian,
		AssetCategories:     []*entity.Category{category(entity.CategoryTypeAsset, "1234.56", "0.44")},
		LiabilityCategories: []*entity.Category{category(entity.CategoryTypeLiability, "35")},
	}

	first := CalculateLevy(in)
	second := CalculateLevy(in)

	if !first.Payable.Equal(second.Payable) || !first.NetBase.Equal(second.NetBase) ||
		!first.TotalAssets.Equal(second.TotalAssets) || !first.TotalDeductions.Equal(second.TotalDeductions) {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if !in.AssetCategories[0].Items[0].Amount.Equal(decimal.RequireFromString("1234.56")) {
		t.Error("input was mutated")
	}
}

func TestCalculateRecordLevy(t *testing.T) {
	r := &entity.Record{
		CalendarType: entity.CalendarTypeIslamic,
		Categories: []*entity.Category{
			category(entity.CategoryTypeAsset, "1000"),
			category(entity.CategoryTypeLiability, "200"),
		},
	}

	got := CalculateRecordLevy(r)
	if !got.TotalAssets.Equal(decimal.NewFromInt(1000)) || !got.TotalDeductions.Equal(decimal.NewFromInt(200)) {
		t.Errorf("unexpected totals %+v", got)
	}
	if !got.Payable.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Payable = %s, want 20", got.Payable)
	}
}

func TestRateFor(t *testing.T) {
	if !RateFor(entity.CalendarTypeIslamic).Equal(IslamicRate) {
		t.Error("islamic rate mismatch")
	}
	if !RateFor(entity.CalendarTypeGregorian).Equal(GregorianRate) {
		t.Error("gregorian rate mismatch")
	}
	if !GregorianRate.GreaterThan(IslamicRate) {
		t.Error("solar rate should exceed lunar rate")
	}
}
