package template

import (
	"strings"
	"testing"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

func TestDefaultCatalogue(t *testing.T) {
	r := Default()

	cats := r.ListCategories()
	if len(cats) != 12 {
		t.Fatalf("expected 12 categories, got %d", len(cats))
	}
	if cats[0].Key != "asset-jewelry" || cats[11].Key != "liability-other" {
		t.Errorf("unexpected ordering: first=%s last=%s", cats[0].Key, cats[11].Key)
	}
	if r.Version() != CatalogueVersion {
		t.Errorf("Version() = %q, want %q", r.Version(), CatalogueVersion)
	}

	for _, c := range cats {
		if strings.HasPrefix(c.Key, entity.CustomStableIDPrefix) {
			t.Errorf("category key %q uses reserved prefix", c.Key)
		}
		if len(c.Items) == 0 {
			t.Errorf("category %q has no items", c.Key)
		}
		for _, it := range c.Items {
			if !it.DefaultAmount.IsZero() {
				t.Errorf("item %q default amount = %s", it.Key, it.DefaultAmount)
			}
		}
	}
}

func TestListCategoriesReturnsCopy(t *testing.T) {
	r := Default()

	cats := r.ListCategories()
	cats[0].NameEn = "mutated"
	cats[0].Items[0].Description = "mutated"

	again := r.ListCategories()
	if again[0].NameEn == "mutated" || again[0].Items[0].Description == "mutated" {
		t.Fatal("registry state leaked through ListCategories")
	}
}

func TestFindCategoryByKey(t *testing.T) {
	r := Default()

	c, ok := r.FindCategoryByKey("asset-cash")
	if !ok || c.NameEn != "Cash & bank accounts" {
		t.Fatalf("FindCategoryByKey(asset-cash) = %+v, %v", c, ok)
	}
	if _, ok := r.FindCategoryByKey("custom-cat-asset-x-1"); ok {
		t.Error("custom key must not resolve")
	}
	if !r.HasCategoryKey("liability-misc") || r.HasCategoryKey("") {
		t.Error("HasCategoryKey mismatch")
	}
}

func TestFindItemByKey(t *testing.T) {
	r := Default()

	ref, ok := r.FindItemByKey("liability-misc.mehar")
	if !ok {
		t.Fatal("expected item to be found")
	}
	if ref.CategoryKey != "liability-misc" || ref.Item.Description != "Mehar payable" {
		t.Errorf("unexpected ref %+v", ref)
	}
	if _, ok := r.FindItemByKey("asset-cash"); ok {
		t.Error("category key must not resolve as item key")
	}
}

func TestFindCategoryByNames(t *testing.T) {
	r := Default()

	tests := []struct {
		name    string
		typ     entity.CategoryType
		nameEn  string
		nameUr  string
		wantKey string
		found   bool
	}{
		{"current english name", entity.CategoryTypeAsset, "Cash & bank accounts", "", "asset-cash", true},
		{"case and whitespace", entity.CategoryTypeAsset, "  cash   &  BANK accounts ", "", "asset-cash", true},
		{"legacy english alias", entity.CategoryTypeAsset, "Gold & Silver", "", "asset-jewelry", true},
		{"urdu name only", entity.CategoryTypeLiability, "", "دیگر واجبات", "liability-other", true},
		{"legacy urdu alias", entity.CategoryTypeAsset, "Something else", "سونا اور چاندی", "asset-jewelry", true},
		{"same name scoped by asset type", entity.CategoryTypeAsset, "Miscellaneous", "", "asset-misc", true},
		{"same name scoped by liability type", entity.CategoryTypeLiability, "Miscellaneous", "", "liability-misc", true},
		{"english wins over urdu", entity.CategoryTypeAsset, "Receivable loans", "متفرق", "asset-receivable-loans", true},
		{"wrong type", entity.CategoryTypeLiability, "Cash & bank accounts", "", "", false},
		{"unknown", entity.CategoryTypeAsset, "Crypto wallets", "", "", false},
		{"empty names", entity.CategoryTypeAsset, "  ", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := r.FindCategoryByNames(tt.typ, tt.nameEn, tt.nameUr)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && c.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", c.Key, tt.wantKey)
			}
		})
	}
}

func TestFindItemByDescription(t *testing.T) {
	r := Default()

	tests := []struct {
		name        string
		categoryKey string
		description string
		wantKey     string
		found       bool
	}{
		{"current description", "asset-jewelry", "Gold", "asset-jewelry.gold", true},
		{"legacy description", "asset-cash", "bank balance", "asset-cash.cash", true},
		{"scoped to category", "asset-cash", "Gold", "", false},
		{"generic amount slot", "liability-other", " amount ", "liability-other.amount", true},
		{"unknown category", "nope", "Amount", "", false},
		{"blank description", "asset-cash", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, ok := r.FindItemByDescription(tt.categoryKey, tt.description)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && it.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", it.Key, tt.wantKey)
			}
		})
	}
}

func TestNewRejectsInvalidCatalogues(t *testing.T) {
	tests := []struct {
		name       string
		categories []entity.CategoryTemplate
	}{
		{
			name: "reserved prefix",
			categories: []entity.CategoryTemplate{
				{Key: "custom-cat-asset-gold-1", Type: entity.CategoryTypeAsset, NameEn: "Gold"},
			},
		},
		{
			name: "duplicate key",
			categories: []entity.CategoryTemplate{
				{Key: "a", Type: entity.CategoryTypeAsset, NameEn: "A"},
				{Key: "a", Type: entity.CategoryTypeAsset, NameEn: "B"},
			},
		},
		{
			name: "alias clash within type",
			categories: []entity.CategoryTemplate{
				{Key: "a", Type: entity.CategoryTypeAsset, NameEn: "A"},
				{Key: "b", Type: entity.CategoryTypeAsset, NameEn: "B", LegacyNames: []string{" a "}},
			},
		},
		{
			name: "invalid type",
			categories: []entity.CategoryTemplate{
				{Key: "a", Type: "EQUITY", NameEn: "A"},
			},
		},
		{
			name: "item key reused",
			categories: []entity.CategoryTemplate{
				{Key: "a", Type: entity.CategoryTypeAsset, NameEn: "A", Items: []entity.TemplateItem{{Key: "x", Description: "X"}}},
				{Key: "b", Type: entity.CategoryTypeAsset, NameEn: "B", Items: []entity.TemplateItem{{Key: "x", Description: "Y"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("test", tt.categories); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewAllowsSameNameAcrossTypes(t *testing.T) {
	_, err := New("test", []entity.CategoryTemplate{
		{Key: "a", Type: entity.CategoryTypeAsset, NameEn: "Business"},
		{Key: "l", Type: entity.CategoryTypeLiability, NameEn: "Business"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
