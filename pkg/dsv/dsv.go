// Package dsv parses and writes delimiter-separated text in the many
// incompatible dialects found in the wild, not just strict RFC 4180 CSV.
//
// The parser is permissive by contract: Parse never fails. Malformed input
// is resolved deterministically by a character-level state machine instead
// of being rejected, and configuration that cannot take effect (a separator
// that is a line break, say) is silently dropped. Everything is text; the
// package does no type inference.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Each call owns its working
// state exclusively; no mutable state crosses call boundaries.
//
// # Parsing
//
//	table := dsv.Parse("Country,Capital City\nGermany,Berlin")
//	table.Header            // ["Country", "Capital City"]
//	table.Rows              // [["Germany", "Berlin"]]
//	table.MappedRows[0]     // {"Country": "Germany", "Capital City": "Berlin"}
//
// Dialects are configured per call:
//
//	opts := dsv.DefaultParseOptions()
//	opts.Quote = '\''
//	opts.Separators = []rune{';'}
//	table := dsv.ParseWithOptions("'Rock''n''Roll';4145", opts)
//
// # Writing
//
// Stringify is the inverse pipeline. It accepts either a row-major
// [][]string (first row is the header) or a *Table, and quotes a cell only
// when its content demands it:
//
//	out, err := dsv.Stringify([][]string{{"a", "b"}, {"1", "2"}})
//	// "a,b\n1,2"
package dsv

import (
	"github.com/shapestone/shape-dsv/internal/parser"
)

// Parse parses a complete in-memory document with default options: double
// quote, comma separator, strict line breaks. It never fails; see
// ParseWithOptions for the permissive-parser contract.
func Parse(input string) *Table {
	return ParseWithOptions(input, DefaultParseOptions())
}

// ParseWithOptions parses a complete in-memory document. The first row of
// the result is the header; every body row additionally gets a header-keyed
// mapping.
//
// Parse never returns an error: ambiguous or malformed input produces a
// best-effort table, and unusable configuration values are filtered out
// rather than rejected.
func ParseWithOptions(input string, opts ParseOptions) *Table {
	opts = opts.sanitized()
	res := parser.Parse(input, parser.Options{
		Quote:                   opts.Quote,
		Separators:              opts.Separators,
		LooseLineBreaks:         opts.LineBreaks == LineBreaksLoose,
		RequireTrailingLineFeed: opts.RequireTrailingLineFeed,
		TrimQuotePadding:        opts.TrimQuotePadding,
		EmulateTaintedRows:      opts.EmulateTaintedRows,
	})
	return &Table{Header: res.Header, Rows: res.Rows, MappedRows: res.Mapped}
}

// Stringify writes a table back to delimited text with default options:
// double quote, comma separator, "\n" line ends, trailing-emptiness
// trimming enabled.
//
// The input may be a row-major [][]string whose first row is the header, or
// a Table/*Table. Anything else is a programming error and returns
// ErrUnsupportedInput.
func Stringify(v any) (string, error) {
	return StringifyWithOptions(v, DefaultWriteOptions())
}
