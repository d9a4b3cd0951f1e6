package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleItems() []Item {
	return []Item{
		{ID: "1", Title: "React Guide", Excerpt: "Hooks from first principles", Category: "web"},
		{ID: "2", Title: "Career Tips", Excerpt: "Notes on growing as an engineer", Category: "career"},
		{ID: "3", Title: "Go Services", Excerpt: "Building small WEB backends", Category: "backend"},
		{ID: "4", Title: "CSS Orbits", Excerpt: "Transform tricks for galaxy layouts", Category: "web"},
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}

	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		state    FilterState
		expected []string
	}{
		{
			name:     "all with empty query returns everything in order",
			state:    FilterState{Category: CategoryAll},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "empty category behaves like all",
			state:    FilterState{},
			expected: []string{"1", "2", "3", "4"},
		},
		{
			name:     "category keeps relative order",
			state:    FilterState{Category: "web"},
			expected: []string{"1", "4"},
		},
		{
			name:     "category is case sensitive",
			state:    FilterState{Category: "Web"},
			expected: []string{},
		},
		{
			name:     "unknown category yields empty result",
			state:    FilterState{Category: "gardening"},
			expected: []string{},
		},
		{
			name:     "query matches title case-insensitively",
			state:    FilterState{Category: CategoryAll, Query: "tips"},
			expected: []string{"2"},
		},
		{
			name:     "query matches excerpt",
			state:    FilterState{Category: CategoryAll, Query: "web"},
			expected: []string{"3"},
		},
		{
			name:     "query is a raw substring, not tokens",
			state:    FilterState{Category: CategoryAll, Query: "s from f"},
			expected: []string{"1"},
		},
		{
			name:     "both predicates must hold",
			state:    FilterState{Category: "web", Query: "galaxy"},
			expected: []string{"4"},
		},
		{
			name:     "no match yields empty result",
			state:    FilterState{Category: "career", Query: "react"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleItems(), tt.state)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilter_CategoryAndQueryExample(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "React Guide", Category: "web"},
		{ID: "b", Title: "Career Tips", Category: "career"},
	}

	assert.Equal(t, []string{"a"}, ids(Filter(items, FilterState{Category: "web"})))
	assert.Equal(t, []string{"b"}, ids(Filter(items, FilterState{Category: CategoryAll, Query: "tips"})))
}

func TestFilter_IsSubsetAndIdempotent(t *testing.T) {
	items := sampleItems()
	states := []FilterState{
		{Category: CategoryAll},
		{Category: "web", Query: "o"},
		{Category: CategoryAll, Query: "E"},
		{Category: "nope"},
	}

	for _, st := range states {
		first := Filter(items, st)
		second := Filter(items, st)

		assert.Equal(t, first, second)

		for _, got := range first {
			assert.Contains(t, items, got)
		}
	}
}

func TestFilter_QueryEquivalence(t *testing.T) {
	items := sampleItems()

	for _, q := range []string{"o", "GO", "css", "engineer", "zzz"} {
		var expected []string

		for _, it := range items {
			lq := strings.ToLower(q)
			if strings.Contains(strings.ToLower(it.Title), lq) || strings.Contains(strings.ToLower(it.Excerpt), lq) {
				expected = append(expected, it.ID)
			}
		}

		if expected == nil {
			expected = []string{}
		}

		assert.Equal(t, expected, ids(Filter(items, FilterState{Category: CategoryAll, Query: q})), "query %q", q)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	items := sampleItems()
	before := sampleItems()

	_ = Filter(items, FilterState{Category: "web", Query: "guide"})

	assert.Equal(t, before, items)
}

func TestFilterState_Matches(t *testing.T) {
	item := &Item{Title: "Orbital Galaxy", Excerpt: "css", Category: "web"}

	assert.True(t, FilterState{Category: "web", Query: "GALAXY"}.Matches(item))
	assert.False(t, FilterState{Category: "career"}.Matches(item))
	assert.Equal(t, FilterState{Category: CategoryAll}, DefaultFilterState())
}
