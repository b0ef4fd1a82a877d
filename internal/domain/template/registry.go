// Package template holds the canonical category layout and its legacy aliases.
package template

import (
	"fmt"
	"strings"

	"github.com/levy-tracker/backend/internal/domain/entity"
)

// Registry is an immutable catalogue of category templates.
// Lookups never fail; absence is reported through the boolean result.
type Registry struct {
	version    string
	categories []entity.CategoryTemplate
	byKey      map[string]int
	items      map[string]entity.TemplateItemRef
	byName     map[entity.CategoryType]map[string]int
	byDesc     map[string]map[string]int
}

// New validates the catalogue and builds the lookup indexes.
func New(version string, categories []entity.CategoryTemplate) (*Registry, error) {
	r := &Registry{
		version:    version,
		categories: cloneCategories(categories),
		byKey:      make(map[string]int, len(categories)),
		items:      make(map[string]entity.TemplateItemRef),
		byName:     make(map[entity.CategoryType]map[string]int),
		byDesc:     make(map[string]map[string]int, len(categories)),
	}

	for i, c := range r.categories {
		if c.Key == "" {
			return nil, fmt.Errorf("template category %d has no key", i)
		}
		if strings.HasPrefix(c.Key, entity.CustomStableIDPrefix) {
			return nil, fmt.Errorf("template key %q uses the reserved prefix %q", c.Key, entity.CustomStableIDPrefix)
		}
		if !c.Type.IsValid() {
			return nil, fmt.Errorf("template %q has invalid type %q", c.Key, c.Type)
		}
		if _, dup := r.byKey[c.Key]; dup {
			return nil, fmt.Errorf("duplicate template key %q", c.Key)
		}
		r.byKey[c.Key] = i

		names := r.byName[c.Type]
		if names == nil {
			names = make(map[string]int)
			r.byName[c.Type] = names
		}
		for _, name := range append([]string{c.NameEn, c.NameUr}, c.LegacyNames...) {
			n := normalize(name)
			if n == "" {
				continue
			}
			if other, taken := names[n]; taken && other != i {
				return nil, fmt.Errorf("name %q is claimed by %q and %q", name, r.categories[other].Key, c.Key)
			}
			names[n] = i
		}

		descs := make(map[string]int, len(c.Items))
		for j, item := range c.Items {
			if item.Key == "" {
				return nil, fmt.Errorf("template %q item %d has no key", c.Key, j)
			}
			if strings.HasPrefix(item.Key, entity.CustomStableIDPrefix) {
				return nil, fmt.Errorf("template item key %q uses the reserved prefix", item.Key)
			}
			if _, dup := r.items[item.Key]; dup {
				return nil, fmt.Errorf("duplicate template item key %q", item.Key)
			}
			r.items[item.Key] = entity.TemplateItemRef{CategoryKey: c.Key, Item: item}

			for _, desc := range append([]string{item.Description}, item.LegacyDescriptions...) {
				d := normalize(desc)
				if d == "" {
					continue
				}
				if other, taken := descs[d]; taken && other != j {
					return nil, fmt.Errorf("description %q is claimed twice in %q", desc, c.Key)
				}
				descs[d] = j
			}
		}
		r.byDesc[c.Key] = descs
	}

	return r, nil
}

// MustNew is New that panics on an invalid catalogue.
func MustNew(version string, categories []entity.CategoryTemplate) *Registry {
	r, err := New(version, categories)
	if err != nil {
		panic(err)
	}
	return r
}

// Version identifies the catalogue revision.
func (r *Registry) Version() string {
	return r.version
}

// ListCategories returns the templates in default display order.
func (r *Registry) ListCategories() []entity.CategoryTemplate {
	return cloneCategories(r.categories)
}

// HasCategoryKey reports whether key is a canonical category key.
func (r *Registry) HasCategoryKey(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// FindCategoryByKey looks up a template by its permanent key.
func (r *Registry) FindCategoryByKey(key string) (entity.CategoryTemplate, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return entity.CategoryTemplate{}, false
	}
	return cloneCategory(r.categories[i]), true
}

// FindItemByKey looks up a template item and its owning category by item key.
func (r *Registry) FindItemByKey(itemKey string) (entity.TemplateItemRef, bool) {
	ref, ok := r.items[itemKey]
	return ref, ok
}

// FindCategoryByNames matches either name against current names and legacy aliases
// of templates of the given type. The English name wins over the Urdu name.
func (r *Registry) FindCategoryByNames(categoryType entity.CategoryType, nameEn, nameUr string) (entity.CategoryTemplate, bool) {
	names := r.byName[categoryType]
	for _, name := range []string{nameEn, nameUr} {
		n := normalize(name)
		if n == "" {
			continue
		}
		if i, ok := names[n]; ok {
			return cloneCategory(r.categories[i]), true
		}
	}
	return entity.CategoryTemplate{}, false
}

// FindItemByDescription matches a description against one category's items and their aliases.
func (r *Registry) FindItemByDescription(categoryKey, description string) (entity.TemplateItem, bool) {
	descs, ok := r.byDesc[categoryKey]
	if !ok {
		return entity.TemplateItem{}, false
	}
	d := normalize(description)
	if d == "" {
		return entity.TemplateItem{}, false
	}
	j, ok := descs[d]
	if !ok {
		return entity.TemplateItem{}, false
	}
	return cloneItem(r.categories[r.byKey[categoryKey]].Items[j]), true
}

// normalize trims, collapses inner whitespace and lower-cases.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func cloneCategories(in []entity.CategoryTemplate) []entity.CategoryTemplate {
	out := make([]entity.CategoryTemplate, len(in))
	for i, c := range in {
		out[i] = cloneCategory(c)
	}
	return out
}

func cloneCategory(c entity.CategoryTemplate) entity.CategoryTemplate {
	c.LegacyNames = append([]string(nil), c.LegacyNames...)
	items := make([]entity.TemplateItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = cloneItem(item)
	}
	c.Items = items
	return c
}

func cloneItem(item entity.TemplateItem) entity.TemplateItem {
	item.LegacyDescriptions = append([]string(nil), item.LegacyDescriptions...)
	return item
}
