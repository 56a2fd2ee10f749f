package dsv

import "unicode/utf8"

// LineBreakMode selects which byte sequences count as one line break.
type LineBreakMode int

const (
	// LineBreaksStrict folds "\r\n" and lone "\r" (default).
	LineBreaksStrict LineBreakMode = iota
	// LineBreaksLoose additionally folds "\n\r" as a single break, matching
	// a spreadsheet tool that emits it.
	LineBreaksLoose
)

// ParseOptions configures parsing behavior. Invalid values are filtered out
// of effect rather than rejected: a quote or separator that is a line break
// character simply never matches.
type ParseOptions struct {
	// Quote is the quote character. 0 disables quoted cells.
	// Default: '"'
	Quote rune

	// Separators is the set of cell separators. Order is irrelevant and
	// duplicates are dropped. A separator may equal Quote; that overlap is
	// the trigger condition for EmulateTaintedRows.
	// Default: {','}
	Separators []rune

	// LineBreaks selects strict or loose line-break recognition.
	// Default: LineBreaksStrict
	LineBreaks LineBreakMode

	// RequireTrailingLineFeed declares that the document's trailing line
	// feed is part of its content. By default a trailing line feed is not
	// required and one is synthesized when missing.
	// Default: false
	RequireTrailingLineFeed bool

	// TrimQuotePadding drops the spaces that follow a quoted cell's
	// closing quote. By default those spaces stay in the cell.
	// Default: false
	TrimQuotePadding bool

	// EmulateTaintedRows reproduces a legacy spreadsheet defect: once a
	// quoted cell in a row closes on a character that is both quote and
	// separator, a later quoted cell in the same row loses the ability to
	// contain an embedded line feed.
	// Default: false
	EmulateTaintedRows bool
}

// DefaultParseOptions returns the default parse configuration.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Quote:      '"',
		Separators: []rune{','},
		LineBreaks: LineBreaksStrict,
	}
}

// sanitized filters out configuration that cannot take effect. This runs
// once per call, before the transition tables are built.
func (o ParseOptions) sanitized() ParseOptions {
	if !validCellDelim(o.Quote) {
		o.Quote = 0
	}
	seps := make([]rune, 0, len(o.Separators))
	seen := make(map[rune]bool, len(o.Separators))
	for _, s := range o.Separators {
		if !validCellDelim(s) || seen[s] {
			continue
		}
		seen[s] = true
		seps = append(seps, s)
	}
	o.Separators = seps
	return o
}

// WriteOptions configures Stringify behavior.
type WriteOptions struct {
	// Quote is the quote character used to wrap cells that need quoting.
	// 0 disables quoting entirely.
	// Default: '"'
	Quote rune

	// Separator joins the cells of a row.
	// Default: ','
	Separator rune

	// LineEnd joins rows. It must be one of "\n", "\r\n" or "\r"; any
	// other value falls back to "\n".
	// Default: "\n"
	LineEnd string

	// TrimEmpty drops wholly-empty trailing rows and trailing columns
	// whose every value is empty or absent.
	// Default: true
	TrimEmpty bool

	// TrailingLineEnd appends one more LineEnd after the last row.
	// Default: false
	TrailingLineEnd bool
}

// DefaultWriteOptions returns the default write configuration.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Quote:     '"',
		Separator: ',',
		LineEnd:   "\n",
		TrimEmpty: true,
	}
}

// sanitized normalizes the write configuration: unusable delimiters fall
// back to their defaults and an unknown line end becomes "\n".
func (o WriteOptions) sanitized() WriteOptions {
	if !validCellDelim(o.Quote) {
		o.Quote = 0
	}
	if !validCellDelim(o.Separator) {
		o.Separator = ','
	}
	switch o.LineEnd {
	case "\n", "\r\n", "\r":
	default:
		o.LineEnd = "\n"
	}
	return o
}

// validCellDelim reports whether r can act as a quote or separator: exactly
// one character and never a line break.
func validCellDelim(r rune) bool {
	return r != 0 && r != '\n' && r != '\r' && r != utf8.RuneError && utf8.ValidRune(r)
}
