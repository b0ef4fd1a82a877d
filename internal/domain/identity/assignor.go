// Package identity derives permanent stable ids for categories and items that
// do not map to a template slot.
package identity

import (
	"strconv"
	"strings"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/template"
)

const (
	categoryPrefix = entity.CustomStableIDPrefix + "cat-"
	itemPrefix     = entity.CustomStableIDPrefix + "item-"

	maxSlugLength   = 40
	slugPlaceholder = "x"
)

// CategoryRef is the part of a category the assignor looks at.
type CategoryRef struct {
	StableID string
	Type     entity.CategoryType
	NameEn   string
	NameUr   string
}

// ItemRef is the part of a line item the assignor looks at.
type ItemRef struct {
	StableID    string
	Description string
}

// Assignor synthesizes deterministic ids for unkeyed entries.
type Assignor struct {
	registry *template.Registry
}

// NewAssignor creates an Assignor that avoids the registry's keys.
func NewAssignor(registry *template.Registry) *Assignor {
	return &Assignor{registry: registry}
}

// AssignCategoryID returns the category's stable id, or derives one from its type,
// name and 0-based position in the payload.
func (a *Assignor) AssignCategoryID(c CategoryRef, index int) string {
	if id := strings.TrimSpace(c.StableID); id != "" {
		return id
	}

	name := c.NameEn
	if strings.TrimSpace(name) == "" {
		name = c.NameUr
	}
	id := categoryPrefix + strings.ToLower(string(c.Type)) + "-" + Slug(name) + "-" + strconv.Itoa(index+1)

	for a.registry != nil && a.registry.HasCategoryKey(id) {
		id += "-" + slugPlaceholder
	}
	return id
}

// AssignItemID returns the item's stable id, or derives one scoped under the
// parent category's stable id and the item's 0-based position.
func (a *Assignor) AssignItemID(item ItemRef, parentStableID string, index int) string {
	if id := strings.TrimSpace(item.StableID); id != "" {
		return id
	}

	id := itemPrefix + parentStableID + "-" + Slug(item.Description) + "-" + strconv.Itoa(index+1)

	for a.registry != nil && a.isItemKey(id) {
		id += "-" + slugPlaceholder
	}
	return id
}

func (a *Assignor) isItemKey(id string) bool {
	_, ok := a.registry.FindItemByKey(id)
	return ok
}

// EnsureUnique returns id, or id suffixed with -2, -3, ... when already in used.
// The returned value is recorded in used.
func EnsureUnique(id string, used map[string]struct{}) string {
	candidate := id
	for n := 2; ; n++ {
		if _, taken := used[candidate]; !taken {
			break
		}
		candidate = id + "-" + strconv.Itoa(n)
	}
	used[candidate] = struct{}{}
	return candidate
}

// Slug lower-cases s, collapses every run of characters outside [a-z0-9] into a
// single hyphen, trims hyphens at both ends and truncates to 40 bytes.
func Slug(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	if slug == "" {
		return slugPlaceholder
	}
	return slug
}
