package template

import (
	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CatalogueVersion is bumped whenever names, aliases or slots change.
const CatalogueVersion = "2025.2"

var defaultRegistry = MustNew(CatalogueVersion, defaultCategories())

// Default returns the bundled catalogue shared by the whole process.
func Default() *Registry {
	return defaultRegistry
}

func item(key, description string, legacy ...string) entity.TemplateItem {
	return entity.TemplateItem{
		Key:                key,
		Description:        description,
		LegacyDescriptions: legacy,
		DefaultAmount:      decimal.Zero,
	}
}

// defaultCategories lists the canonical layout. Keys are permanent: rename a slot by
// changing its names and moving the old name into LegacyNames, never by changing Key.
func defaultCategories() []entity.CategoryTemplate {
	return []entity.CategoryTemplate{
		{
			Key:         "asset-jewelry",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Jewelry & precious metals",
			NameUr:      "زیورات اور قیمتی دھاتیں",
			LegacyNames: []string{"Gold & silver", "Jewellery", "Jewelry", "سونا اور چاندی", "زیورات"},
			Items: []entity.TemplateItem{
				item("asset-jewelry.gold", "Gold", "Gold jewelry", "Gold (tola)"),
				item("asset-jewelry.silver", "Silver", "Silver jewelry"),
				item("asset-jewelry.other", "Other precious items", "Precious stones", "Other valuables"),
			},
		},
		{
			Key:         "asset-cash",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Cash & bank accounts",
			NameUr:      "نقدی اور بینک اکاؤنٹس",
			LegacyNames: []string{"Cash in hand", "Bank balances", "Cash and bank", "نقدی"},
			Items: []entity.TemplateItem{
				item("asset-cash.cash", "Cash", "Cash in hand", "Bank balance", "Bank accounts"),
			},
		},
		{
			Key:         "asset-property-for-sale",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Property purchased for onward sale",
			NameUr:      "فروخت کے لیے خریدی گئی جائیداد",
			LegacyNames: []string{"Property for resale", "Plots for sale"},
			Items: []entity.TemplateItem{
				item("asset-property-for-sale.amount", "Amount", "Value"),
			},
		},
		{
			Key:         "asset-receivable-loans",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Receivable loans",
			NameUr:      "قابل وصول قرضے",
			LegacyNames: []string{"Loans given", "Money lent"},
			Items: []entity.TemplateItem{
				item("asset-receivable-loans.amount", "Amount"),
			},
		},
		{
			Key:         "asset-bc-deposits",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "BC deposits not yet received",
			NameUr:      "بی سی ڈپازٹس جو ابھی وصول نہیں ہوئے",
			LegacyNames: []string{"Committee deposits", "BC / committee deposits"},
			Items: []entity.TemplateItem{
				item("asset-bc-deposits.amount", "Amount"),
			},
		},
		{
			Key:         "asset-misc",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Miscellaneous",
			NameUr:      "متفرق",
			LegacyNames: []string{"Other assets"},
			Items: []entity.TemplateItem{
				item("asset-misc.foreign-currency", "Foreign currency"),
				item("asset-misc.prize-bonds", "Prize bonds"),
				item("asset-misc.insurance-premium", "Insurance premium"),
				item("asset-misc.hajj-deposit", "Hajj deposit"),
				item("asset-misc.savings-certificates", "Savings certificates", "National savings certificates"),
				item("asset-misc.provident-fund", "Provident fund", "GP fund", "Provident/GP fund"),
			},
		},
		{
			Key:         "asset-business",
			Type:        entity.CategoryTypeAsset,
			NameEn:      "Business/Investment",
			NameUr:      "کاروبار/سرمایہ کاری",
			LegacyNames: []string{"Business assets", "Business & investments"},
			Items: []entity.TemplateItem{
				item("asset-business.raw-materials", "Raw materials", "Stock in trade"),
				item("asset-business.goods-receivable", "Goods sold receivable", "Trade receivables"),
				item("asset-business.lc-margin", "LC margin deposit"),
				item("asset-business.bank-payments", "Payment to banks for goods"),
				item("asset-business.partner-investment", "Investment as partner", "Partnership investment"),
			},
		},
		{
			Key:         "liability-payable-loans",
			Type:        entity.CategoryTypeLiability,
			NameEn:      "Payable loans",
			NameUr:      "واجب الادا قرضے",
			LegacyNames: []string{"Loans taken", "Debts"},
			Items: []entity.TemplateItem{
				item("liability-payable-loans.amount", "Amount"),
			},
		},
		{
			Key:         "liability-bc-installments",
			Type:        entity.CategoryTypeLiability,
			NameEn:      "BC balance installments received",
			NameUr:      "موصول شدہ بی سی بقایا اقساط",
			LegacyNames: []string{"Committee installments"},
			Items: []entity.TemplateItem{
				item("liability-bc-installments.amount", "Amount"),
			},
		},
		{
			Key:         "liability-business",
			Type:        entity.CategoryTypeLiability,
			NameEn:      "Business",
			NameUr:      "کاروباری",
			LegacyNames: []string{"Business liabilities"},
			Items: []entity.TemplateItem{
				item("liability-business.salaries", "Salaries payable", "Wages payable"),
				item("liability-business.credit-purchases", "Goods bought on credit", "Trade payables"),
			},
		},
		{
			Key:         "liability-misc",
			Type:        entity.CategoryTypeLiability,
			NameEn:      "Miscellaneous",
			NameUr:      "متفرق",
			LegacyNames: []string{"Other payables"},
			Items: []entity.TemplateItem{
				item("liability-misc.utility-bills", "Utility bills payable", "Utility bills"),
				item("liability-misc.taxes", "Taxes payable"),
				item("liability-misc.rent", "Rent payable"),
				item("liability-misc.mehar", "Mehar payable", "Haq mehr payable"),
			},
		},
		{
			Key:         "liability-other",
			Type:        entity.CategoryTypeLiability,
			NameEn:      "Other liabilities",
			NameUr:      "دیگر واجبات",
			Items: []entity.TemplateItem{
				item("liability-other.amount", "Amount"),
			},
		},
	}
}
