package identity

import (
	"strings"
	"testing"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/template"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Crypto Wallets", "crypto-wallets"},
		{"  --Gold & Silver!!  ", "gold-silver"},
		{"BC/Committee 2024", "bc-committee-2024"},
		{"زیورات", "x"},
		{"", "x"},
		{"Car (Toyota) زیورات", "car-toyota"},
		{strings.Repeat("ab", 30), strings.Repeat("ab", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAssignCategoryID(t *testing.T) {
	a := NewAssignor(template.Default())

	tests := []struct {
		name  string
		ref   CategoryRef
		index int
		want  string
	}{
		{
			name: "keyed entry is returned unchanged",
			ref:  CategoryRef{StableID: "asset-cash", Type: entity.CategoryTypeAsset, NameEn: "Whatever"},
			want: "asset-cash",
		},
		{
			name: "existing custom id is kept",
			ref:  CategoryRef{StableID: " custom-cat-asset-car-3 ", Type: entity.CategoryTypeAsset},
			want: "custom-cat-asset-car-3",
		},
		{
			name:  "derived from english name",
			ref:   CategoryRef{Type: entity.CategoryTypeAsset, NameEn: "Crypto Wallets", NameUr: "کرپٹو"},
			index: 4,
			want:  "custom-cat-asset-crypto-wallets-5",
		},
		{
			name: "urdu fallback yields placeholder",
			ref:  CategoryRef{StableID: "   ", Type: entity.CategoryTypeLiability, NameUr: "قرض"},
			want: "custom-cat-liability-x-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.AssignCategoryID(tt.ref, tt.index); got != tt.want {
				t.Errorf("AssignCategoryID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssignCategoryIDIsIdempotent(t *testing.T) {
	a := NewAssignor(template.Default())
	ref := CategoryRef{Type: entity.CategoryTypeAsset, NameEn: "Shares"}

	first := a.AssignCategoryID(ref, 2)
	ref.StableID = first
	second := a.AssignCategoryID(ref, 7)

	if first != second {
		t.Errorf("re-assignment changed id: %q -> %q", first, second)
	}
	if again := a.AssignCategoryID(CategoryRef{Type: entity.CategoryTypeAsset, NameEn: "Shares"}, 2); again != first {
		t.Errorf("derivation is not deterministic: %q vs %q", again, first)
	}
}

func TestDefaultNamedCustomCategoriesAreDistinct(t *testing.T) {
	a := NewAssignor(template.Default())
	ref := CategoryRef{Type: entity.CategoryTypeAsset, NameEn: "New category"}

	first := a.AssignCategoryID(ref, 0)
	second := a.AssignCategoryID(ref, 1)
	if first == second {
		t.Fatalf("expected distinct ids, both %q", first)
	}
}

func TestAssignItemID(t *testing.T) {
	a := NewAssignor(template.Default())

	if got := a.AssignItemID(ItemRef{StableID: "asset-cash.cash"}, "asset-cash", 0); got != "asset-cash.cash" {
		t.Errorf("keyed item changed: %q", got)
	}

	got := a.AssignItemID(ItemRef{Description: "Bitcoin"}, "custom-cat-asset-crypto-1", 1)
	want := "custom-item-custom-cat-asset-crypto-1-bitcoin-2"
	if got != want {
		t.Errorf("AssignItemID() = %q, want %q", got, want)
	}

	again := a.AssignItemID(ItemRef{StableID: got, Description: "Renamed"}, "other-parent", 9)
	if again != got {
		t.Errorf("re-assignment changed id: %q -> %q", got, again)
	}
}

func TestDerivedIDsNeverCollideWithTemplateKeys(t *testing.T) {
	reg := template.Default()
	a := NewAssignor(reg)

	for i, c := range reg.ListCategories() {
		id := a.AssignCategoryID(CategoryRef{Type: c.Type, NameEn: c.NameEn, NameUr: c.NameUr}, i)
		if reg.HasCategoryKey(id) {
			t.Errorf("derived id %q collides with a template key", id)
		}
		for j, it := range c.Items {
			itemID := a.AssignItemID(ItemRef{Description: it.Description}, c.Key, j)
			if _, ok := reg.FindItemByKey(itemID); ok {
				t.Errorf("derived item id %q collides with a template key", itemID)
			}
		}
	}
}

func TestEnsureUnique(t *testing.T) {
	used := map[string]struct{}{}

	got := []string{
		EnsureUnique("a", used),
		EnsureUnique("a", used),
		EnsureUnique("a", used),
		EnsureUnique("a-2", used),
		EnsureUnique("b", used),
	}
	want := []string{"a", "a-2", "a-3", "a-2-2", "b"}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
