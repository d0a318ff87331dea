// Package wordassoc computes distributional word-association statistics
// from a pre-tokenized text corpus: windowed co-occurrence counts,
// Positive PMI scores, and cosine similarity over PPMI vectors.
//
// The whole pipeline runs once during New; the resulting Model is
// immutable and safe for any number of concurrent readers. Lifecycle is
// build → query → discard; there are no mutation methods.
package wordassoc

import (
	"github.com/cognicore/wordassoc/pkg/wordassoc/cooc"
	"github.com/cognicore/wordassoc/pkg/wordassoc/corpus"
	"github.com/cognicore/wordassoc/pkg/wordassoc/ppmi"
	"github.com/cognicore/wordassoc/pkg/wordassoc/similarity"
)

// Options configures a Model.
type Options struct {
	// Path locates the corpus: line-delimited, whitespace-tokenized
	// UTF-8 text. Required.
	Path string

	// Window is the co-occurrence window radius. Values <= 0 use
	// cooc.DefaultWindow. To count with a radius of zero (no contexts),
	// drive cooc.Counter directly.
	Window int
}

// Model holds the four computed tables and exposes the query layer.
type Model struct {
	window    int
	counts    *cooc.Table
	marginals *cooc.Marginals
	scores    *ppmi.Table
	cosines   *similarity.Table
}

// New reads the corpus and runs the full pipeline: co-occurrence
// counting, marginal aggregation, PPMI scoring, and pairwise cosine
// similarity. The only failure mode is corpus I/O; unknown-word queries
// on the returned model yield zero-valued defaults, never errors.
func New(opts Options) (*Model, error) {
	window := opts.Window
	if window <= 0 {
		window = cooc.DefaultWindow
	}

	counter := cooc.NewCounter(window)
	err := corpus.ForEachLine(opts.Path, func(tokens []string) error {
		counter.AddLine(tokens)
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := counter.Table()
	marginals := cooc.NewMarginals(counts)
	scores := ppmi.New(counts, marginals)

	return &Model{
		window:    window,
		counts:    counts,
		marginals: marginals,
		scores:    scores,
		cosines:   similarity.New(scores),
	}, nil
}

// Window returns the window radius the model was built with.
func (m *Model) Window() int {
	return m.window
}

// PairCount returns the co-occurrence count of (target, context),
// 0 if the pair was never observed.
func (m *Model) PairCount(target, context string) int64 {
	return m.counts.Count(target, context)
}

// TargetCount returns the marginal target count of word, 0 if unseen.
func (m *Model) TargetCount(word string) int64 {
	return m.marginals.Target(word)
}

// ContextCount returns the marginal context count of word, 0 if unseen.
func (m *Model) ContextCount(word string) int64 {
	return m.marginals.Context(word)
}

// TotalPairs returns the grand total over all pairwise counts.
func (m *Model) TotalPairs() int64 {
	return m.marginals.Total()
}

// PPMI returns the Positive PMI of a word pair, checking both orderings,
// 0 if the pair was never observed.
func (m *Model) PPMI(x, y string) float64 {
	return m.scores.Score(x, y)
}

// TopPPMI returns up to k context words with the highest PPMI to word,
// in decreasing order. Unseen words yield an empty result.
func (m *Model) TopPPMI(word string, k int) []string {
	return tokens(m.scores.TopK(word, k))
}

// Cosine returns the cosine similarity of two words' PPMI vectors,
// 0 if either word has no vector.
func (m *Model) Cosine(x, y string) float64 {
	return m.cosines.Cosine(x, y)
}

// TopCosine returns up to k nearest neighbors of word by cosine
// similarity, in decreasing order. Unseen words yield an empty result.
func (m *Model) TopCosine(word string, k int) []string {
	list := m.cosines.TopK(word, k)
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Token
	}
	return out
}

// Stats summarizes table sizes. Pairwise and cosine tables are O(V²) in
// the worst case for dense vocabularies.
type Stats struct {
	Window     int
	Vocabulary int
	Pairs      int
	TotalPairs int64
}

// Stats returns a summary of the model's tables.
func (m *Model) Stats() Stats {
	return Stats{
		Window:     m.window,
		Vocabulary: m.marginals.Vocabulary(),
		Pairs:      m.counts.Size(),
		TotalPairs: m.marginals.Total(),
	}
}

func tokens(list []ppmi.Neighbor) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Token
	}
	return out
}
