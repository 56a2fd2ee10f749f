// Package parser runs the full parse pipeline: preprocess the raw text,
// tokenize it into raw cells, normalize quoted cells, and split the table
// into header, body rows and header-keyed row mappings.
//
// Parsing is best effort and never fails. Malformed input is resolved
// deterministically by the tokenizer's transition table instead of being
// rejected; configuration that cannot take effect is filtered out before
// the pipeline runs (see pkg/dsv).
package parser

import (
	"github.com/shapestone/shape-dsv/internal/tokenizer"
)

// Options configures one parse call. The zero value means: no quote, no
// separators, strict line breaks. Callers normally start from the public
// defaults in pkg/dsv.
type Options struct {
	// Quote is the quote character. 0 disables quoted cells.
	Quote rune
	// Separators are the cell separators.
	Separators []rune
	// LooseLineBreaks additionally folds "\n\r" as one line break.
	LooseLineBreaks bool
	// RequireTrailingLineFeed declares the input's trailing line feed to be
	// content: one more line feed is always appended before scanning, and
	// an unterminated quote at end of input keeps the final character.
	RequireTrailingLineFeed bool
	// TrimQuotePadding drops the spaces that follow a closing quote from
	// the cell. By default they are kept.
	TrimQuotePadding bool
	// EmulateTaintedRows enables the legacy spreadsheet defect emulation.
	EmulateTaintedRows bool
}

// Result is a parsed table: the header row, the body rows, and one
// header-keyed mapping per body row.
type Result struct {
	Header []string
	Rows   [][]string
	Mapped []map[string]string
}

// Parse runs the pipeline on a complete in-memory document.
func Parse(input string, opts Options) Result {
	if input == "" {
		return Result{Header: []string{}, Rows: [][]string{}, Mapped: []map[string]string{}}
	}

	text := preprocess(input, opts.LooseLineBreaks, opts.RequireTrailingLineFeed)
	raw := tokenizer.Tokenize(text, tokenizer.Dialect{
		Quote:              opts.Quote,
		Separators:         opts.Separators,
		EmulateTaintedRows: opts.EmulateTaintedRows,
		KeepFinalLineFeed:  opts.RequireTrailingLineFeed,
	})

	for _, row := range raw {
		for i, cell := range row {
			row[i] = unquoteCell(cell, opts.Quote, opts.TrimQuotePadding)
		}
	}

	return mapRows(raw)
}

// mapRows splits normalized rows into header and body and builds the
// header-keyed mapping for each body row. Short rows map missing positions
// to the empty string; cells beyond the header are kept in the plain row but
// dropped from the mapping. Duplicate header names are allowed, and later
// columns overwrite earlier ones in the mapping.
func mapRows(rows [][]string) Result {
	if len(rows) == 0 {
		return Result{Header: []string{}, Rows: [][]string{}, Mapped: []map[string]string{}}
	}

	header := rows[0]
	body := rows[1:]
	mapped := make([]map[string]string, 0, len(body))
	for _, row := range body {
		m := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				m[name] = row[i]
			} else {
				m[name] = ""
			}
		}
		mapped = append(mapped, m)
	}

	return Result{Header: header, Rows: body, Mapped: mapped}
}
