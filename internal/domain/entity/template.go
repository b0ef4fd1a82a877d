package entity

import "github.com/shopspring/decimal"

// CategoryTemplate is a canonical category slot of the current layout.
// Key is permanent; names and aliases may change between releases.
type CategoryTemplate struct {
	Key         string
	Type        CategoryType
	NameEn      string
	NameUr      string
	LegacyNames []string
	Items       []TemplateItem
}

// TemplateItem is a canonical line item slot within a CategoryTemplate.
type TemplateItem struct {
	Key                string
	Description        string
	LegacyDescriptions []string
	DefaultAmount      decimal.Decimal
}

// TemplateItemRef locates a template item together with its owning category.
type TemplateItemRef struct {
	CategoryKey string
	Item        TemplateItem
}

// CustomStableIDPrefix marks stable ids synthesized for user-created entries.
// Canonical template keys never carry it.
const CustomStableIDPrefix = "custom-"
