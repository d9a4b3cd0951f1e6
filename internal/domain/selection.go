package domain

// Selection tracks which item, if any, is open in the experience explorer.
// The zero value is NoSelection.
type Selection struct {
	index  int
	active bool
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// Selected returns a selection pointing at index i.
func Selected(i int) Selection {
	return Selection{index: i, active: true}
}

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.active
}

// Active reports whether an item is selected.
func (s Selection) Active() bool {
	return s.active
}

// Activate applies a user activation of item i. Activating the item that
// is already selected closes it; activating any other item moves the
// selection directly to it.
func (s Selection) Activate(i int) Selection {
	if s.active && s.index == i {
		return NoSelection()
	}

	return Selected(i)
}

// Dismiss closes the detail panel.
func (s Selection) Dismiss() Selection {
	return NoSelection()
}

// IndexPtr returns the selected index as a nullable value for serialization.
func (s Selection) IndexPtr() *int {
	if !s.active {
		return nil
	}

	i := s.index

	return &i
}
