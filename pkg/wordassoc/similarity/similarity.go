// Package similarity computes cosine similarity between words represented
// as sparse PPMI vectors.
//
// A word's vector is its PPMI row restricted to strictly positive scores;
// clipped-to-zero entries carry no signal and are dropped. Cosine is the
// dot product over the intersection of two vectors' supports divided by
// the product of their magnitudes, which equals standard cosine over the
// full dimensional space since non-shared dimensions contribute 0.
//
// The table covers all unordered pairs of vector-bearing words and is
// O(V²) in the worst case; this bound governs practical vocabulary size.
package similarity

import (
	"math"
	"sort"

	"github.com/cognicore/wordassoc/pkg/wordassoc/ppmi"
)

// Neighbor is a word with its cosine similarity score.
type Neighbor struct {
	Token string
	Score float64
}

// wordPair is an unordered pair stored with canonical ordering (A < B).
type wordPair struct {
	A, B string
}

func newWordPair(a, b string) wordPair {
	if a > b {
		a, b = b, a
	}
	return wordPair{A: a, B: b}
}

// Table holds cosine similarities for all pairs of vector-bearing words.
// Pairs are stored under one canonical ordering and queried through the
// same canonicalization, so no bidirectional lookup is needed.
type Table struct {
	pairs     map[wordPair]float64
	neighbors map[string][]Neighbor
}

// New builds the cosine table from a PPMI table. Words whose every PPMI
// score is 0 have a zero-magnitude vector; their similarity to anything
// is defined as 0 rather than dividing by zero.
func New(scores *ppmi.Table) *Table {
	vectors := make(map[string]map[string]float64, scores.Targets())
	magnitudes := make(map[string]float64, scores.Targets())

	words := make([]string, 0, scores.Targets())
	collectVectors(scores, func(word string, vec map[string]float64) {
		vectors[word] = vec
		var sum float64
		for _, score := range vec {
			sum += score * score
		}
		magnitudes[word] = math.Sqrt(sum)
		words = append(words, word)
	})
	sort.Strings(words)

	t := &Table{
		pairs:     make(map[wordPair]float64),
		neighbors: make(map[string][]Neighbor, len(words)),
	}

	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			w1, w2 := words[i], words[j]
			score := cosine(vectors[w1], vectors[w2], magnitudes[w1], magnitudes[w2])
			t.pairs[wordPair{A: w1, B: w2}] = score
			t.neighbors[w1] = append(t.neighbors[w1], Neighbor{Token: w2, Score: score})
			t.neighbors[w2] = append(t.neighbors[w2], Neighbor{Token: w1, Score: score})
		}
	}

	for _, list := range t.neighbors {
		sort.Slice(list, func(i, j int) bool {
			if list[i].Score == list[j].Score {
				return list[i].Token < list[j].Token
			}
			return list[i].Score > list[j].Score
		})
	}

	return t
}

// collectVectors materializes each target's strictly positive PPMI
// entries. Targets whose every score clipped to 0 have an empty vector
// and zero magnitude; they are skipped, so they carry no table entries
// and fall through to the zero defaults on lookup.
func collectVectors(scores *ppmi.Table, fn func(word string, vec map[string]float64)) {
	scores.EachTarget(func(target string) {
		vec := make(map[string]float64)
		scores.Contexts(target, func(context string, score float64) {
			if score > 0 {
				vec[context] = score
			}
		})
		if len(vec) > 0 {
			fn(target, vec)
		}
	})
}

// cosine computes the dot product over the intersection of supports.
// Iterating the smaller vector keeps each pair at O(min(support sizes)).
func cosine(a, b map[string]float64, magA, magB float64) float64 {
	if magA == 0 || magB == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for token, score := range a {
		if other, ok := b[token]; ok {
			dot += score * other
		}
	}
	return dot / (magA * magB)
}

// Cosine returns the similarity for an unordered pair, 0 for pairs not
// in the table (unseen words, or a word paired with itself).
func (t *Table) Cosine(x, y string) float64 {
	return t.pairs[newWordPair(x, y)]
}

// TopK returns up to k nearest neighbors of word by descending cosine
// similarity, ties broken lexicographically. A word with no vector entry
// yields an empty result.
func (t *Table) TopK(word string, k int) []Neighbor {
	list := t.neighbors[word]
	if len(list) == 0 || k <= 0 {
		return nil
	}
	if len(list) > k {
		list = list[:k]
	}
	out := make([]Neighbor, len(list))
	copy(out, list)
	return out
}
