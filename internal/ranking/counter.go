package ranking

import "sort"

// Counter tallies occurrences while remembering first-seen order, so that
// tied items rank deterministically instead of following map iteration.
type Counter[T comparable] struct {
	counts map[T]int
	seen   []T
}

// NewCounter returns an empty Counter.
func NewCounter[T comparable]() *Counter[T] {
	return &Counter[T]{counts: map[T]int{}}
}

// Add records one occurrence of item.
func (c *Counter[T]) Add(item T) {
	if _, ok := c.counts[item]; !ok {
		c.seen = append(c.seen, item)
	}
	c.counts[item]++
}

// Len reports how many distinct items were counted.
func (c *Counter[T]) Len() int { return len(c.seen) }

// MostCommon returns the tallied entries sorted descending by count.
// Entries with equal counts keep their first-seen order.
func (c *Counter[T]) MostCommon() []Entry[T, int] {
	out := make([]Entry[T, int], 0, len(c.seen))
	for _, item := range c.seen {
		out = append(out, Entry[T, int]{Item: item, Count: c.counts[item]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// LeastCommon is MostCommon reversed end to end.
func (c *Counter[T]) LeastCommon() []Entry[T, int] {
	out := c.MostCommon()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
