package mode

// SelectableList is an ordered list with one selected entry.
// The selection is always a valid index when the list is non-empty.
type SelectableList[T any] struct {
	items    []T
	selected int
}

// Set replaces the entries, clamping the selection if the list shrank.
func (l *SelectableList[T]) Set(items []T) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
}

// Items returns the entries.
func (l *SelectableList[T]) Items() []T {
	return l.items
}

// Len returns the number of entries.
func (l *SelectableList[T]) Len() int {
	return len(l.items)
}

// Index returns the selected index.
func (l *SelectableList[T]) Index() int {
	return l.selected
}

// Selection returns the selected entry.
func (l *SelectableList[T]) Selection() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[l.selected], true
}

// SelectNext moves the selection down, wrapping to the top.
func (l *SelectableList[T]) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.items)
}

// SelectPrevious moves the selection up, wrapping to the bottom.
func (l *SelectableList[T]) SelectPrevious() {
	if len(l.items) == 0 {
		return
	}
	l.selected = (l.selected - 1 + len(l.items)) % len(l.items)
}
