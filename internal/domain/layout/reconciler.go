// Package layout maps categories from older years or older catalogue revisions onto
// the current template without losing any amount.
package layout

import (
	"sort"
	"strings"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/identity"
	"github.com/levy-tracker/backend/internal/domain/template"
	"github.com/shopspring/decimal"
)

// Category is a category as it flows into and out of reconciliation.
type Category struct {
	StableID string
	Type     entity.CategoryType
	NameEn   string
	NameUr   string
	Items    []Item
}

// Item is a line item as it flows into and out of reconciliation.
type Item struct {
	StableID    string
	Description string
	Amount      decimal.Decimal
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
}

// MatchKind says which rule of the resolution chain produced a match.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchStableID
	MatchAlias
)

func (k MatchKind) String() string {
	switch k {
	case MatchStableID:
		return "stable_id"
	case MatchAlias:
		return "alias"
	default:
		return "none"
	}
}

// Reconciler remaps arbitrary categories onto the current template.
type Reconciler struct {
	registry *template.Registry
	assignor *identity.Assignor
}

// NewReconciler creates a Reconciler over the given registry.
func NewReconciler(registry *template.Registry, assignor *identity.Assignor) *Reconciler {
	return &Reconciler{registry: registry, assignor: assignor}
}

// ResolveCategory finds the template slot of a source category.
// A stable id wins over names; names are only compared within the same type.
func (r *Reconciler) ResolveCategory(src Category) (entity.CategoryTemplate, MatchKind) {
	if sid := strings.TrimSpace(src.StableID); sid != "" {
		if tpl, ok := r.registry.FindCategoryByKey(sid); ok && tpl.Type == src.Type {
			return tpl, MatchStableID
		}
	}
	if tpl, ok := r.registry.FindCategoryByNames(src.Type, src.NameEn, src.NameUr); ok {
		return tpl, MatchAlias
	}
	return entity.CategoryTemplate{}, MatchNone
}

// ResolveItem finds the template item slot of a source item belonging to the
// category resolved as categoryKey. A stable id may point at a slot in another
// category of the same type, which happens when an item moved between revisions.
func (r *Reconciler) ResolveItem(categoryKey string, src Item) (entity.TemplateItemRef, MatchKind) {
	if sid := strings.TrimSpace(src.StableID); sid != "" {
		if ref, ok := r.registry.FindItemByKey(sid); ok && r.sameType(ref.CategoryKey, categoryKey) {
			return ref, MatchStableID
		}
	}
	if item, ok := r.registry.FindItemByDescription(categoryKey, src.Description); ok {
		return entity.TemplateItemRef{CategoryKey: categoryKey, Item: item}, MatchAlias
	}
	return entity.TemplateItemRef{}, MatchNone
}

func (r *Reconciler) sameType(a, b string) bool {
	ta, okA := r.registry.FindCategoryByKey(a)
	tb, okB := r.registry.FindCategoryByKey(b)
	return okA && okB && ta.Type == tb.Type
}

// Skeleton returns one category per template entry with every item at zero.
// Catalogue defaults are prefill hints only; reconciliation never adds them in.
func (r *Reconciler) Skeleton() []Category {
	templates := r.registry.ListCategories()
	out := make([]Category, 0, len(templates))
	for _, tpl := range templates {
		c := Category{
			StableID: tpl.Key,
			Type:     tpl.Type,
			NameEn:   tpl.NameEn,
			NameUr:   tpl.NameUr,
			Items:    make([]Item, 0, len(tpl.Items)),
		}
		for _, it := range tpl.Items {
			c.Items = append(c.Items, Item{
				StableID:    it.Key,
				Description: it.Description,
				Amount:      decimal.Zero,
			})
		}
		out = append(out, c)
	}
	return out
}

type slot struct {
	category int
	item     int
	hits     int
}

// Reconcile returns the current template skeleton with matched amounts added in,
// followed by custom categories holding everything that did not match.
// The sum of output amounts always equals the sum of input amounts.
func (r *Reconciler) Reconcile(source []Category) []Category {
	skeleton := r.Skeleton()

	slots := make(map[string]*slot)
	used := make(map[string]struct{}, len(skeleton))
	for ci, c := range skeleton {
		used[c.StableID] = struct{}{}
		for ii, it := range c.Items {
			slots[it.StableID] = &slot{category: ci, item: ii}
		}
	}

	// Carried categories claim their own ids before any id is synthesized.
	kinds := make([]MatchKind, len(source))
	templates := make([]entity.CategoryTemplate, len(source))
	kept := make(map[int]string)
	for si, src := range source {
		templates[si], kinds[si] = r.ResolveCategory(src)
		if kinds[si] != MatchNone || len(src.Items) == 0 {
			continue
		}
		sid := strings.TrimSpace(src.StableID)
		if sid == "" || r.registry.HasCategoryKey(sid) {
			continue
		}
		if _, taken := used[sid]; !taken {
			used[sid] = struct{}{}
			kept[si] = sid
		}
	}

	var custom []Category
	for si, src := range source {
		tpl, kind := templates[si], kinds[si]
		if kind == MatchNone {
			if len(src.Items) == 0 {
				continue
			}
			custom = append(custom, r.carryOver(src, si, kept[si], used))
			continue
		}

		unmapped := -1
		for _, it := range src.Items {
			ref, itemKind := r.ResolveItem(tpl.Key, it)
			if itemKind != MatchNone {
				s := slots[ref.Item.Key]
				target := &skeleton[s.category].Items[s.item]
				target.Amount = target.Amount.Add(it.Amount)
				s.hits++
				if s.hits == 1 {
					target.Quantity, target.UnitPrice = it.Quantity, it.UnitPrice
				} else {
					target.Quantity, target.UnitPrice = nil, nil
				}
				continue
			}

			if unmapped < 0 {
				id := r.assignor.AssignCategoryID(identity.CategoryRef{Type: src.Type, NameEn: src.NameEn, NameUr: src.NameUr}, si)
				custom = append(custom, Category{
					StableID: identity.EnsureUnique(id, used),
					Type:     src.Type,
					NameEn:   src.NameEn,
					NameUr:   src.NameUr,
				})
				unmapped = len(custom) - 1
			}
			c := &custom[unmapped]
			c.Items = append(c.Items, r.customItem(it, c.StableID, len(c.Items), itemIDs(c.Items)))
		}
	}

	return append(skeleton, custom...)
}

// carryOver keeps an unresolvable category verbatim, keying whatever is unkeyed.
// keptID is the category's own id when it was reserved up front.
func (r *Reconciler) carryOver(src Category, index int, keptID string, used map[string]struct{}) Category {
	id := keptID
	if id == "" {
		ref := identity.CategoryRef{Type: src.Type, NameEn: src.NameEn, NameUr: src.NameUr}
		if sid := strings.TrimSpace(src.StableID); sid != "" && !r.registry.HasCategoryKey(sid) {
			ref.StableID = sid
		}
		id = identity.EnsureUnique(r.assignor.AssignCategoryID(ref, index), used)
	}

	c := Category{
		StableID: id,
		Type:     src.Type,
		NameEn:   src.NameEn,
		NameUr:   src.NameUr,
		Items:    make([]Item, 0, len(src.Items)),
	}
	itemUsed := make(map[string]struct{}, len(src.Items))
	for j, it := range src.Items {
		c.Items = append(c.Items, r.customItem(it, c.StableID, j, itemUsed))
	}
	return c
}

// customItem keys an item placed in a custom category. Template item keys are
// not reused there so that a later import can still tell the two apart.
func (r *Reconciler) customItem(it Item, parentID string, index int, used map[string]struct{}) Item {
	ref := identity.ItemRef{Description: it.Description}
	if sid := strings.TrimSpace(it.StableID); sid != "" {
		if _, isTemplate := r.registry.FindItemByKey(sid); !isTemplate {
			ref.StableID = sid
		}
	}
	it.StableID = identity.EnsureUnique(r.assignor.AssignItemID(ref, parentID, index), used)
	return it
}

func itemIDs(items []Item) map[string]struct{} {
	ids := make(map[string]struct{}, len(items))
	for _, it := range items {
		ids[it.StableID] = struct{}{}
	}
	return ids
}

// FromRecord converts a stored record into reconciliation input, in display order.
func FromRecord(rec *entity.Record) []Category {
	cats := make([]*entity.Category, len(rec.Categories))
	copy(cats, rec.Categories)
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].SortOrder < cats[j].SortOrder })

	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		items := make([]*entity.LineItem, len(c.Items))
		copy(items, c.Items)
		sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

		cat := Category{
			StableID: c.StableID,
			Type:     c.Type,
			NameEn:   c.NameEn,
			NameUr:   c.NameUr,
			Items:    make([]Item, 0, len(items)),
		}
		for _, it := range items {
			cat.Items = append(cat.Items, Item{
				StableID:    it.StableID,
				Description: it.Description,
				Amount:      it.Amount,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		out = append(out, cat)
	}
	return out
}

// Total sums every item amount.
func Total(categories []Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		for _, it := range c.Items {
			total = total.Add(it.Amount)
		}
	}
	return total
}
