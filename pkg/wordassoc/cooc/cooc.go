// Package cooc builds windowed co-occurrence counts from tokenized lines.
package cooc

// DefaultWindow is the default window radius: tokens up to this many
// positions to the left and right of a target count as its context.
const DefaultWindow = 5

// Pair is a directional (target, context) key. Every co-occurrence inside
// a window is recorded under both orderings as the window slides, so the
// relation is symmetric in total mass even though keys are directional.
type Pair struct {
	Target  string
	Context string
}

// Counter accumulates windowed co-occurrence counts. It is a local
// accumulator: feed lines with AddLine, then take an immutable Table
// snapshot for querying.
type Counter struct {
	window int
	counts map[Pair]int64
	total  int64
}

// NewCounter creates a counter with the given window radius. A negative
// radius falls back to DefaultWindow; a radius of zero is valid and
// produces no pairs.
func NewCounter(window int) *Counter {
	if window < 0 {
		window = DefaultWindow
	}
	return &Counter{
		window: window,
		counts: make(map[Pair]int64),
	}
}

// Window returns the window radius in use.
func (c *Counter) Window() int {
	return c.window
}

// AddLine counts co-occurrences within one line. For each position i the
// context span is [max(0,i-w), min(len,i+w+1)) excluding i itself, so
// windows truncate at line boundaries without padding. Duplicate tokens
// inside a span each count separately: the table is a multiset count,
// not a set of distinct contexts.
func (c *Counter) AddLine(tokens []string) {
	size := len(tokens)
	for i, target := range tokens {
		left := i - c.window
		if left < 0 {
			left = 0
		}
		right := i + c.window + 1
		if right > size {
			right = size
		}
		for j := left; j < right; j++ {
			if j == i {
				continue
			}
			c.counts[Pair{Target: target, Context: tokens[j]}]++
			c.total++
		}
	}
}

// Table returns an immutable snapshot of the accumulated counts. The
// counter can keep accumulating afterwards without affecting the snapshot.
func (c *Counter) Table() *Table {
	counts := make(map[Pair]int64, len(c.counts))
	for p, n := range c.counts {
		counts[p] = n
	}
	return &Table{counts: counts, total: c.total}
}

// Table is a read-only pairwise co-occurrence count table.
//
// Memory scales with the number of distinct (target, context) pairs,
// O(V²) in the worst case for dense vocabularies; this bound governs
// practical corpus size.
type Table struct {
	counts map[Pair]int64
	total  int64
}

// Count returns the count for a (target, context) pair, 0 if unseen.
func (t *Table) Count(target, context string) int64 {
	return t.counts[Pair{Target: target, Context: context}]
}

// Total returns the grand total: the sum over all pairwise counts.
func (t *Table) Total() int64 {
	return t.total
}

// Size returns the number of distinct (target, context) pairs.
func (t *Table) Size() int {
	return len(t.counts)
}

// Each invokes fn for every observed pair and its count.
func (t *Table) Each(fn func(p Pair, count int64)) {
	for p, n := range t.counts {
		fn(p, n)
	}
}
