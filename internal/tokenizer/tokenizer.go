// Package tokenizer turns preprocessed delimited text into a table of raw,
// still-quoted cell strings.
//
// The scanner is a character-level state machine, not an RFC 4180 parser: it
// never fails, and ambiguous input is resolved deterministically by the
// transition table in machine.go. Quote characters stay in the emitted cells;
// stripping and un-escaping happen downstream.
//
// The input must already be line-break normalized and end with a line feed
// (see internal/parser). The scanner relies on the final line feed to close
// the last row; end of input is treated as "line feed plus termination".
package tokenizer

// Dialect is the character-level configuration the scanner needs.
type Dialect struct {
	// Quote is the quote character. 0 disables quoted cells.
	Quote rune

	// Separators are the cell separators. A separator may equal Quote;
	// that overlap is what triggers the tainted-row emulation.
	Separators []rune

	// EmulateTaintedRows enables the legacy spreadsheet defect: once a
	// quoted cell in a row closes on a character that is both quote and
	// separator, a later quoted cell in the same row can no longer contain
	// an embedded line feed.
	EmulateTaintedRows bool

	// KeepFinalLineFeed controls the unterminated-quote case at end of
	// input: when true the final character is kept in the cell verbatim
	// before the synthetic closing quote, otherwise it is dropped.
	KeepFinalLineFeed bool
}

// dialectTables is the lookup form of a Dialect, built once per call.
type dialectTables struct {
	quote      rune
	separators map[rune]bool
}

// aggregator is the in-progress table. It is owned exclusively by one
// Tokenize call: created empty, mutated once per input character, and its
// rows field is the sole output.
type aggregator struct {
	tables dialectTables
	d      Dialect

	rows [][]string
	row  []string // committed cells of the current row
	cell []rune   // cell under construction

	cellDropped bool // the cell under construction was discarded

	state state
	taint rowTaint
}

// Tokenize walks the input one Unicode character at a time and returns the
// raw cell table. It never fails.
func Tokenize(input string, d Dialect) [][]string {
	seps := make(map[rune]bool, len(d.Separators))
	for _, s := range d.Separators {
		seps[s] = true
	}

	agg := &aggregator{
		tables: dialectTables{quote: d.Quote, separators: seps},
		d:      d,
		rows:   make([][]string, 0, 16),
	}

	runes := []rune(input)
	for i, r := range runes {
		agg.step(r, i == len(runes)-1)
	}
	agg.endRow()

	return agg.rows
}

// step consumes one character.
func (a *aggregator) step(r rune, last bool) {
	cls := reduce(a.tables.classify(r))
	prev := a.state
	next := nextState(prev, cls)

	if a.d.EmulateTaintedRows {
		next = a.adjustTaint(prev, next, cls)
	}
	a.state = next

	if a.state == stateDiscarded {
		// Drop the trailing cell a separator opened just before the line
		// ended, but never the sole cell of a row.
		if len(a.row) > 0 {
			a.cellDropped = true
		}
		a.cell = a.cell[:0]
		a.state = stateFinished
		a.taint = taintNone
	}

	if !last {
		if a.state == stateFinished {
			if cls == classLineFeed {
				a.endRow()
			} else {
				a.endCell()
			}
			a.state = stateEmpty
		} else {
			a.cell = append(a.cell, r)
		}
		return
	}

	// End of input with an unterminated quote: close the value with a
	// synthetic quote character. This is the only place content is
	// injected.
	if a.state == stateOpen {
		if a.d.KeepFinalLineFeed {
			a.cell = append(a.cell, r)
		}
		if a.d.Quote != 0 {
			a.cell = append(a.cell, a.d.Quote)
		}
	}
}

// adjustTaint applies the tainted-row emulation after the regular transition
// has been computed. It may retarget the transition and mutate the row taint.
func (a *aggregator) adjustTaint(prev, next state, cls inputClass) state {
	if next == stateFinished || next == stateDiscarded {
		switch {
		case cls == classLineFeed:
			a.taint = taintNone
		case prev == stateClosed || prev == stateWaiting:
			// A quoted value just closed on a separator.
			a.mark(cls)
		case a.taint != taintNone:
			// The row is already tainted from an earlier cell.
			a.mark(cls)
		}
		return next
	}

	if cls == classLineFeed && next == stateOpen && a.taint == taintActive {
		// The defect: a literal line feed inside a quoted value of a
		// tainted row force-terminates the value.
		if a.d.Quote != 0 {
			a.cell = append(a.cell, a.d.Quote)
		}
		a.taint = taintNone
		return stateFinished
	}
	return next
}

// mark raises the row taint according to how the cell finished.
func (a *aggregator) mark(cls inputClass) {
	switch cls {
	case classQuoteSeparator:
		a.taint = taintActive
	case classSeparator:
		a.taint = taintInactive
	}
}

// endCell commits the cell under construction to the current row.
func (a *aggregator) endCell() {
	if a.cellDropped {
		a.cellDropped = false
	} else {
		a.row = append(a.row, string(a.cell))
	}
	a.cell = a.cell[:0]
}

// endRow commits the cell under construction and the current row.
func (a *aggregator) endRow() {
	a.endCell()
	a.rows = append(a.rows, a.row)
	a.row = nil
}
