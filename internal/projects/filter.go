package projects

import (
	"sort"
	"strings"

	"zed-recent/internal/model"
)

// Filter keeps items whose title or subtitle contains query, ignoring case.
// An empty query keeps everything. Relative order is preserved.
func Filter(items []model.Item, query string) []model.Item {
	q := strings.ToLower(query)
	if q == "" {
		return items
	}
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Subtitle), q) {
			out = append(out, it)
		}
	}
	return out
}

// SortByTitle orders items by case-insensitive title. Equal titles keep
// their enumeration order.
func SortByTitle(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
	})
}
