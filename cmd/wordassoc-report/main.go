// wordassoc-report builds association models over a corpus and emits a
// JSON report: pairwise counts, top-k PPMI contexts, and top-k cosine
// neighbors, once per requested window radius.
package main

import (
	"crypto/rand"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/wordassoc/pkg/wordassoc"
	"github.com/cognicore/wordassoc/pkg/wordassoc/config"
	"github.com/cognicore/wordassoc/pkg/wordassoc/internalerr"
)

type report struct {
	RunID    string          `json:"run_id"`
	Corpus   string          `json:"corpus"`
	Word     string          `json:"word"`
	Context  string          `json:"context,omitempty"`
	Sections []windowSection `json:"sections"`
}

type windowSection struct {
	Window       int      `json:"window"`
	Vocabulary   int      `json:"vocabulary"`
	TotalPairs   int64    `json:"total_pairs"`
	PairCount    int64    `json:"pair_count,omitempty"`
	PPMI         float64  `json:"ppmi,omitempty"`
	TopPPMI      []string `json:"top_ppmi"`
	TopNeighbors []string `json:"top_neighbors"`
}

func main() {
	var (
		cfgPath    = flag.String("config", "", "Optional: YAML config file (corpus, window)")
		corpusPath = flag.String("corpus", "", "Path to tokenized corpus file")
		windows    = flag.String("windows", "5", "Comma-separated window radii, one report section each")
		word       = flag.String("word", "", "Word to report on (required)")
		context    = flag.String("context", "", "Optional: context word for pair count and PPMI")
		topK       = flag.Int("k", 10, "Number of neighbors to report")
	)
	flag.Parse()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		if *corpusPath == "" {
			*corpusPath = cfg.Corpus
		}
		if cfg.Window > 0 {
			*windows = strconv.Itoa(cfg.Window)
		}
	}

	if *corpusPath == "" {
		log.Fatal("--corpus or --config required")
	}
	if *word == "" {
		log.Fatal("--word required")
	}

	radii, err := parseWindows(*windows)
	if err != nil {
		log.Fatalf("parse windows: %v", err)
	}

	rep := report{
		RunID:   ulid.MustNew(ulid.Now(), rand.Reader).String(),
		Corpus:  *corpusPath,
		Word:    *word,
		Context: *context,
	}

	for _, w := range radii {
		model, err := wordassoc.New(wordassoc.Options{Path: *corpusPath, Window: w})
		if err != nil {
			log.Fatalf("build model (window %d): %v", w, err)
		}

		stats := model.Stats()
		section := windowSection{
			Window:       stats.Window,
			Vocabulary:   stats.Vocabulary,
			TotalPairs:   stats.TotalPairs,
			TopPPMI:      model.TopPPMI(*word, *topK),
			TopNeighbors: model.TopCosine(*word, *topK),
		}
		if *context != "" {
			section.PairCount = model.PairCount(*word, *context)
			section.PPMI = model.PPMI(*word, *context)
		}
		rep.Sections = append(rep.Sections, section)
	}

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

func parseWindows(arg string) ([]int, error) {
	var radii []int
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad window %q", internalerr.ErrInvalidInput, part)
		}
		if w < 1 {
			return nil, fmt.Errorf("%w: window must be >= 1, got %d", internalerr.ErrInvalidInput, w)
		}
		radii = append(radii, w)
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("%w: no windows given", internalerr.ErrInvalidInput)
	}
	return radii, nil
}
