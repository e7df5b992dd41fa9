package services

import (
	"strings"
	"unicode"

	"github.com/Saaaaaad3/Plattera/entity"
)

// MenuCategory is a derived grouping, never persisted. The id is the
// raw category string as it appears on items.
type MenuCategory struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Items []entity.MenuItem `json:"items"`
}

// CategoryDisplayName turns a raw category key into its display form:
// first letter capitalized, hyphens replaced with spaces.
func CategoryDisplayName(raw string) string {
	name := strings.ReplaceAll(raw, "-", " ")
	r := []rune(name)
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

// GroupByCategory splits items into categories in first-seen order.
func GroupByCategory(items []entity.MenuItem) []MenuCategory {
	var order []string
	byID := make(map[string]*MenuCategory)
	for _, it := range items {
		cat, ok := byID[it.Category]
		if !ok {
			cat = &MenuCategory{
				ID:   it.Category,
				Name: CategoryDisplayName(it.Category),
			}
			byID[it.Category] = cat
			order = append(order, it.Category)
		}
		cat.Items = append(cat.Items, it)
	}

	out := make([]MenuCategory, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}
