// Package ppmi scores co-occurrence counts with Positive Pointwise
// Mutual Information.
//
// PPMI(x,y) = max(0, ln(p(x,y) / (p(x)·p(y)))) with joint and marginal
// probabilities estimated from the pairwise count table. Negative PMI is
// clipped to 0, but an entry is still materialized for every observed
// pair, so the table's support mirrors the count table's.
package ppmi

import (
	"math"
	"sort"

	"github.com/cognicore/wordassoc/pkg/wordassoc/cooc"
)

// Neighbor is a context word with its association score.
type Neighbor struct {
	Token string
	Score float64
}

// Table maps target word → context word → PPMI score. Storage is
// asymmetric (entries live under the target) even though PPMI itself is
// symmetric, so lookups check both orderings.
type Table struct {
	scores map[string]map[string]float64
}

// New computes the PPMI table for every pair observed in counts.
// Pairs never observed have no entry and score 0 implicitly.
func New(counts *cooc.Table, marginals *cooc.Marginals) *Table {
	t := &Table{scores: make(map[string]map[string]float64)}

	total := float64(marginals.Total())
	if total == 0 {
		return t
	}

	counts.Each(func(p cooc.Pair, count int64) {
		joint := float64(count) / total
		pTarget := float64(marginals.Target(p.Target)) / total
		pContext := float64(marginals.Context(p.Context)) / total

		score := math.Log(joint / (pTarget * pContext))
		if score < 0 {
			score = 0
		}

		row := t.scores[p.Target]
		if row == nil {
			row = make(map[string]float64)
			t.scores[p.Target] = row
		}
		row[p.Context] = score
	})

	return t
}

// Score returns PPMI(x,y), checking both orderings before falling back
// to 0 for pairs that were never observed.
func (t *Table) Score(x, y string) float64 {
	if row, ok := t.scores[x]; ok {
		if score, ok := row[y]; ok {
			return score
		}
	}
	if row, ok := t.scores[y]; ok {
		if score, ok := row[x]; ok {
			return score
		}
	}
	return 0
}

// Contexts invokes fn for every context of target with its score,
// including clipped zeros. No calls are made for an unseen target.
func (t *Table) Contexts(target string, fn func(context string, score float64)) {
	for context, score := range t.scores[target] {
		fn(context, score)
	}
}

// EachTarget invokes fn for every target word in the table.
func (t *Table) EachTarget(fn func(target string)) {
	for target := range t.scores {
		fn(target)
	}
}

// Targets returns the number of distinct target words in the table.
func (t *Table) Targets() int {
	return len(t.scores)
}

// TopK returns up to k contexts of word ordered by descending PPMI.
// Equal scores break ties lexicographically so results are deterministic.
// An unseen word yields an empty result rather than an error, matching
// the cosine top-k behavior.
func (t *Table) TopK(word string, k int) []Neighbor {
	row := t.scores[word]
	if len(row) == 0 || k <= 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, len(row))
	for context, score := range row {
		neighbors = append(neighbors, Neighbor{Token: context, Score: score})
	}
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Score == neighbors[j].Score {
			return neighbors[i].Token < neighbors[j].Token
		}
		return neighbors[i].Score > neighbors[j].Score
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
