package domain

import "strings"

// FilterState is the per-view category and free-text query that decides
// which items are visible.
type FilterState struct {
	Category string
	Query    string
}

// DefaultFilterState returns the initial state of a view: every category,
// no query.
func DefaultFilterState() FilterState {
	return FilterState{Category: CategoryAll}
}

// Matches reports whether a single item passes both predicates.
// An empty category is treated as CategoryAll.
func (f FilterState) Matches(item *Item) bool {
	return f.matchesCategory(item) && f.matchesQuery(item, strings.ToLower(f.Query))
}

func (f FilterState) matchesCategory(item *Item) bool {
	return f.Category == "" || f.Category == CategoryAll || item.Category == f.Category
}

// matchesQuery expects the query already lowercased.
func (f FilterState) matchesQuery(item *Item, query string) bool {
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(item.Title), query) ||
		strings.Contains(strings.ToLower(item.Excerpt), query)
}

// Filter returns the items that pass the category and query predicates,
// in their original order. It never modifies items and never fails; an
// unknown category simply yields an empty result.
func Filter(items []Item, f FilterState) []Item {
	query := strings.ToLower(f.Query)
	out := make([]Item, 0, len(items))

	for i := range items {
		if f.matchesCategory(&items[i]) && f.matchesQuery(&items[i], query) {
			out = append(out, items[i])
		}
	}

	return out
}
