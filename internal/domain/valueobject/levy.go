// Package valueobject contains domain value objects for the levy records system.
package valueobject

import (
	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Levy rates by calendar basis. The solar year is longer, so its rate is higher.
var (
	IslamicRate   = decimal.RequireFromString("0.025")
	GregorianRate = decimal.RequireFromString("0.0258")
)

// payableScale is the number of minor-unit digits kept on the payable amount.
const payableScale = 2

// LevyInput groups categories by side of the balance.
type LevyInput struct {
	CalendarType        entity.CalendarType
	AssetCategories     []*entity.Category
	LiabilityCategories []*entity.Category
}

// LevyTotals is the outcome of a levy calculation.
type LevyTotals struct {
	TotalAssets     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetBase         decimal.Decimal
	Rate            decimal.Decimal
	Payable         decimal.Decimal
}

// RateFor returns the levy rate for a calendar type.
// Unknown calendar types fall back to the lunar rate.
func RateFor(calendarType entity.CalendarType) decimal.Decimal {
	if calendarType == entity.CalendarTypeGregorian {
		return GregorianRate
	}
	return IslamicRate
}

// CalculateLevy computes totals and the payable amount.
// Payable is never negative.
func CalculateLevy(in LevyInput) LevyTotals {
	assets := sumCategories(in.AssetCategories)
	deductions := sumCategories(in.LiabilityCategories)
	net := assets.Sub(deductions)
	rate := RateFor(in.CalendarType)

	base := net
	if base.IsNegative() {
		base = decimal.Zero
	}

	return LevyTotals{
		TotalAssets:     assets,
		TotalDeductions: deductions,
		NetBase:         net,
		Rate:            rate,
		Payable:         base.Mul(rate).Round(payableScale),
	}
}

// CalculateRecordLevy splits the record's categories by type and calculates its levy.
func CalculateRecordLevy(r *entity.Record) LevyTotals {
	return CalculateLevy(LevyInput{
		CalendarType:        r.CalendarType,
		AssetCategories:     r.CategoriesOfType(entity.CategoryTypeAsset),
		LiabilityCategories: r.CategoriesOfType(entity.CategoryTypeLiability),
	})
}

func sumCategories(categories []*entity.Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		if c == nil {
			continue
		}
		for _, item := range c.Items {
			if item == nil {
				continue
			}
			total = total.Add(item.Amount)
		}
	}
	return total
}
