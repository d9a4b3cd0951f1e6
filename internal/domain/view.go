package domain

import "fmt"

// ViewState is the transient UI state owned by one rendered list view.
// Selection indexes into the filtered subset, so any filter change clears it.
type ViewState struct {
	Kind      Kind
	Filter    FilterState
	Selection Selection
}

// NewViewState returns a view in its initial state.
func NewViewState(kind Kind) ViewState {
	return ViewState{
		Kind:      kind,
		Filter:    DefaultFilterState(),
		Selection: NoSelection(),
	}
}

// SetCategory records an explicit category button activation.
func (v ViewState) SetCategory(category string) ViewState {
	if category == "" {
		category = CategoryAll
	}

	if category != v.Filter.Category {
		v.Selection = NoSelection()
	}

	v.Filter.Category = category

	return v
}

// SetQuery records the search input's current text.
func (v ViewState) SetQuery(query string) ViewState {
	if query != v.Filter.Query {
		v.Selection = NoSelection()
	}

	v.Filter.Query = query

	return v
}

// Activate toggles item i of the visible subset. visible is the length of
// the subset the index refers to.
func (v ViewState) Activate(i, visible int) (ViewState, error) {
	if i < 0 || i >= visible {
		return v, NewValidationErrorWithValue("index",
			fmt.Sprintf("must be between 0 and %d", visible-1), i)
	}

	v.Selection = v.Selection.Activate(i)

	return v, nil
}

// Dismiss closes the detail panel.
func (v ViewState) Dismiss() ViewState {
	v.Selection = v.Selection.Dismiss()
	return v
}

// Visible applies the view's filter to the full collection.
func (v ViewState) Visible(items []Item) []Item {
	return Filter(items, v.Filter)
}
