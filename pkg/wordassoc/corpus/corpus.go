// Package corpus reads line-delimited, pre-tokenized text.
//
// Input files are plain UTF-8 text with one sentence or segment per line
// and whitespace-delimited tokens. Tokenization and lower-casing are the
// producer's responsibility; this package performs no normalization.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// maxLineBytes bounds a single corpus line. Pre-tokenized corpora can
// carry whole documents on one line.
const maxLineBytes = 1 << 20

// ForEachLine streams the file at path line by line, invoking fn with the
// whitespace-split tokens of each line. Lines with no tokens are skipped.
// Windows never span lines, so callers see each line independently.
//
// The first error from fn stops iteration and is returned. I/O errors are
// propagated, not swallowed.
func ForEachLine(path string, fn func(tokens []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineBytes), maxLineBytes)

	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		if err := fn(tokens); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read corpus: %w", err)
	}
	return nil
}

// Load reads the whole corpus into memory as one token slice per line.
// Convenience for small corpora and tests; ForEachLine avoids the
// allocation for larger inputs.
func Load(path string) ([][]string, error) {
	var lines [][]string
	err := ForEachLine(path, func(tokens []string) error {
		lines = append(lines, tokens)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
