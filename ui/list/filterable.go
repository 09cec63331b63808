package list

import (
	"sort"
	"strings"
)

// LabelFunc returns the text a filter is matched against.
type LabelFunc[T any] func(item T) string

type match[T any] struct {
	item  T
	score int
}

// FilterableList wraps a Model with substring filtering. When the filter is
// empty every item is shown in original order. Otherwise only items whose
// label contains the filter (case-insensitive) are shown, best match first.
type FilterableList[T any] struct {
	list     *Model[T]
	label    LabelFunc[T]
	allItems []T
	filter   string
	shown    []T
}

// NewFilterable wraps l. The wrapper owns item assignment from now on; call
// SetItems on the FilterableList, not on l.
func NewFilterable[T any](l *Model[T], label LabelFunc[T]) *FilterableList[T] {
	return &FilterableList[T]{list: l, label: label}
}

// List returns the underlying list for navigation and rendering.
func (fl *FilterableList[T]) List() *Model[T] { return fl.list }

// SetItems replaces the full item set and re-applies the current filter.
func (fl *FilterableList[T]) SetItems(items []T) {
	fl.allItems = append([]T(nil), items...)
	fl.applyFilter()
}

// SetFilter updates the filter string and re-computes visible items. The
// cursor returns to the first match.
func (fl *FilterableList[T]) SetFilter(filter string) {
	if filter == fl.filter {
		return
	}
	fl.filter = filter
	fl.applyFilter()
	fl.list.CursorTop()
}

// Filter returns the current filter string.
func (fl *FilterableList[T]) Filter() string { return fl.filter }

// Total returns the number of items before filtering.
func (fl *FilterableList[T]) Total() int { return len(fl.allItems) }

// FilteredItems returns the items currently passing the filter, in display order.
func (fl *FilterableList[T]) FilteredItems() []T {
	return append([]T(nil), fl.shown...)
}

// View renders the underlying list.
func (fl *FilterableList[T]) View() string { return fl.list.View() }

// ---------------------------------------------------------------------------
// Internal: filter application
// ---------------------------------------------------------------------------

func (fl *FilterableList[T]) applyFilter() {
	if fl.filter == "" {
		fl.shown = fl.allItems
		fl.list.SetItems(fl.shown)
		return
	}

	needle := strings.ToLower(fl.filter)
	var matches []match[T]
	for _, item := range fl.allItems {
		hay := strings.ToLower(fl.label(item))
		idx := strings.Index(hay, needle)
		if idx < 0 {
			continue
		}
		matches = append(matches, match[T]{item: item, score: scoreMatch(hay, needle, idx)})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})

	fl.shown = make([]T, len(matches))
	for i, m := range matches {
		fl.shown[i] = m.item
	}
	fl.list.SetItems(fl.shown)
}

// scoreMatch assigns a quality score to a match. Higher is better.
//   - Prefix match: +10
//   - Shorter labels (less noise) rank higher.
func scoreMatch(s, p string, idx int) int {
	score := 100
	if idx == 0 {
		score += 10
	}
	if len(s) > len(p) {
		score -= len(s) - len(p)
	}
	return score
}
