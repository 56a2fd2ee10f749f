package tokenizer

// rawClass is the bitset of roles a character plays in a dialect. A single
// character can be several things at once, most notably quote and separator.
type rawClass uint8

const (
	rawLineFeed rawClass = 1 << iota
	rawQuote
	rawSeparator
	rawSpace
	rawOther
)

// inputClass is the flattened class the transition table is indexed by.
type inputClass int

const (
	classLineFeed inputClass = iota
	classOther
	classQuote
	classSeparator
	classSpace
	classQuoteSeparator

	numInputClasses
)

func (c inputClass) String() string {
	switch c {
	case classLineFeed:
		return "lineFeed"
	case classOther:
		return "other"
	case classQuote:
		return "quote"
	case classSeparator:
		return "separator"
	case classSpace:
		return "space"
	case classQuoteSeparator:
		return "quoteSeparator"
	default:
		return "unknown"
	}
}

// classify reports every role r plays under this dialect.
func (d *dialectTables) classify(r rune) rawClass {
	var c rawClass
	if r == '\n' {
		c |= rawLineFeed
	}
	if d.quote != 0 && r == d.quote {
		c |= rawQuote
	}
	if d.separators[r] {
		c |= rawSeparator
	}
	if r == ' ' {
		c |= rawSpace
	}
	if c == 0 {
		c = rawOther
	}
	return c
}

// reduce flattens a role bitset to the single class the machine consumes.
// Quote-plus-separator is the one overlap with behavior of its own; every
// other combination collapses to its most significant role.
func reduce(c rawClass) inputClass {
	switch {
	case c&rawLineFeed != 0:
		return classLineFeed
	case c&rawQuote != 0 && c&rawSeparator != 0:
		return classQuoteSeparator
	case c&rawQuote != 0:
		return classQuote
	case c&rawSeparator != 0:
		return classSeparator
	case c&rawSpace != 0:
		return classSpace
	default:
		return classOther
	}
}
