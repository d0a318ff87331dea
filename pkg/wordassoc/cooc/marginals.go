package cooc

// Marginals holds per-word total counts reduced from a pairwise table:
// for each word, the sum of counts where it is the target and the sum
// where it is the context, plus the grand total.
type Marginals struct {
	target  map[string]int64
	context map[string]int64
	total   int64
}

// NewMarginals aggregates a pairwise table in a single pass. Each entry's
// count is added to its target's marginal, its context's marginal, and
// the grand total, so the sums over either marginal equal Total().
func NewMarginals(t *Table) *Marginals {
	m := &Marginals{
		target:  make(map[string]int64),
		context: make(map[string]int64),
	}
	t.Each(func(p Pair, count int64) {
		m.target[p.Target] += count
		m.context[p.Context] += count
		m.total += count
	})
	return m
}

// Target returns the marginal target count for word, 0 if unseen.
func (m *Marginals) Target(word string) int64 {
	return m.target[word]
}

// Context returns the marginal context count for word, 0 if unseen.
func (m *Marginals) Context(word string) int64 {
	return m.context[word]
}

// Total returns the grand total over all pairwise counts.
func (m *Marginals) Total() int64 {
	return m.total
}

// Vocabulary returns the number of distinct target words.
func (m *Marginals) Vocabulary() int {
	return len(m.target)
}
