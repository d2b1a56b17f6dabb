// Package ranking provides frequency counting and tie-aware selection of
// top-ranked items. Every "most/least popular X" query in the analytics
// service goes through it.
package ranking

import "errors"

// ErrNoEntries is returned when a ranking is requested over an empty list.
var ErrNoEntries = errors.New("no entries to rank")

// Entry pairs an item with how often, or how much, it occurred.
type Entry[T, V any] struct {
	Item  T
	Count V
}

// LeadingRun reports how many leading entries share the first entry's
// count. The input must already be sorted by count; the run stops at the
// first entry whose count differs from its predecessor, so equal counts
// reappearing later in the list are not included. A single entry yields 1.
func LeadingRun[T, V any](entries []Entry[T, V], equal func(a, b V) bool) (int, error) {
	if len(entries) == 0 {
		return 0, ErrNoEntries
	}
	n := 1
	for i := 1; i < len(entries); i++ {
		if !equal(entries[i].Count, entries[i-1].Count) {
			break
		}
		n++
	}
	return n, nil
}

// Leaders returns the items of the leading run: every entry tied with the
// first one for the extreme count.
func Leaders[T, V any](entries []Entry[T, V], equal func(a, b V) bool) ([]T, error) {
	n, err := LeadingRun(entries, equal)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, n)
	for _, e := range entries[:n] {
		items = append(items, e.Item)
	}
	return items, nil
}

// SameCount is the equality check for plain comparable counts.
func SameCount[V comparable](a, b V) bool { return a == b }
