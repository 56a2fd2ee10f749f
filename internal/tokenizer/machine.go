package tokenizer

// state is the scanner position within the current cell.
type state int

const (
	// stateEmpty is the start of a cell; nothing has been consumed.
	stateEmpty state = iota
	// stateUnsettled has consumed only spaces; the cell could still turn
	// out quoted or unquoted.
	stateUnsettled
	// stateUnquoted is inside a plain cell.
	stateUnquoted
	// stateOpen is inside a quoted value.
	stateOpen
	// stateWaiting follows a quote inside a quoted value; the next
	// character decides between an escape and a close.
	stateWaiting
	// stateClosed follows a closed quoted value, before its separator.
	stateClosed
	// stateFinished terminates the cell.
	stateFinished
	// stateDiscarded terminates the cell and drops it. Only a line feed in
	// stateEmpty produces it: the separator that opened the cell was the
	// last character of its line.
	stateDiscarded

	numStates
)

func (s state) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateUnsettled:
		return "unsettled"
	case stateUnquoted:
		return "unquoted"
	case stateOpen:
		return "open"
	case stateWaiting:
		return "waiting"
	case stateClosed:
		return "closed"
	case stateFinished:
		return "finished"
	case stateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// transitions maps (state, inputClass) to the next state for the five states
// a cell can be in mid-scan. stateEmpty, stateFinished and stateDiscarded are
// resolved in nextState instead.
var transitions [numStates][numInputClasses]state

func init() {
	set := func(s state, lineFeed, other, quote, separator, space, quoteSep state) {
		transitions[s][classLineFeed] = lineFeed
		transitions[s][classOther] = other
		transitions[s][classQuote] = quote
		transitions[s][classSeparator] = separator
		transitions[s][classSpace] = space
		transitions[s][classQuoteSeparator] = quoteSep
	}

	set(stateUnsettled, stateFinished, stateUnquoted, stateOpen, stateFinished, stateUnsettled, stateOpen)
	set(stateUnquoted, stateFinished, stateUnquoted, stateUnquoted, stateFinished, stateUnquoted, stateFinished)
	set(stateOpen, stateOpen, stateOpen, stateWaiting, stateOpen, stateOpen, stateWaiting)
	set(stateWaiting, stateFinished, stateOpen, stateOpen, stateFinished, stateClosed, stateOpen)
	set(stateClosed, stateFinished, stateOpen, stateClosed, stateFinished, stateClosed, stateFinished)
}

// nextState advances the machine by one input class.
func nextState(s state, c inputClass) state {
	if s == stateEmpty {
		// A line feed right at a cell boundary means the previous
		// separator had nothing after it on this line.
		if c == classLineFeed {
			return stateDiscarded
		}
		s = stateUnsettled
	}
	return transitions[s][c]
}

// rowTaint tracks the tainted-row emulation across the cells of one row.
type rowTaint int

const (
	// taintNone: no quoted cell of this row has closed on a separator yet.
	taintNone rowTaint = iota
	// taintInactive: the row is tainted but the last cell ended on a plain
	// separator, which suspends the defect.
	taintInactive
	// taintActive: the last cell ended on a quote-separator; a line feed
	// inside the next quoted value will force-terminate it.
	taintActive
)
