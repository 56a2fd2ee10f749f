//go:build go1.18
// +build go1.18

package tokenizer

import (
	"strings"
	"testing"
)

// FuzzTokenize throws random inputs at the scanner. Run with:
// go test -fuzz=FuzzTokenize -fuzztime=30s ./internal/tokenizer
func FuzzTokenize(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		"\n",
		"a,b,c\n",
		"\"quoted\"\n",
		"\"with,comma\"\n",
		"\"with\"\"quote\"\n",
		"\"open\nvalue",
		"a\nb\nc\n",
		" \"padded\" ,x\n",
		",,,\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Never panics and always yields at least one row.
		rows := Tokenize(input, Dialect{Quote: '"', Separators: []rune{','}})
		if len(rows) == 0 {
			t.Errorf("Tokenize(%q) returned no rows", input)
		}

		// With quoting disabled no cell can contain a line feed.
		rows = Tokenize(input, Dialect{Separators: []rune{','}})
		for _, row := range rows {
			for _, cell := range row {
				if strings.ContainsRune(cell, '\n') {
					t.Errorf("Tokenize(%q) without quote produced cell %q with a line feed", input, cell)
				}
			}
		}
	})
}
