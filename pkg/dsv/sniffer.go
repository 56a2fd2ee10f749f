// Package dsv dialect detection.
package dsv

import (
	"strings"
	"unicode"
)

// SniffedDialect is the result of dialect detection on a sample.
type SniffedDialect struct {
	// Separator is the most plausible cell separator.
	Separator rune
	// LineEnd is the dominant line ending in the sample: "\n", "\r\n" or
	// "\r".
	LineEnd string
	// HasHeader reports whether the first row looks like column names
	// rather than data.
	HasHeader bool
}

// sniffCandidates are the separators detection considers, most common
// first. The first candidate wins ties.
var sniffCandidates = []rune{',', '\t', ';', '|'}

// Sniff inspects a sample of delimited text and guesses its dialect. A few
// lines of data give the best results; an empty sample yields the comma
// dialect.
func Sniff(sample string) SniffedDialect {
	d := SniffedDialect{
		Separator: ',',
		LineEnd:   sniffLineEnd(sample),
	}
	if sample == "" {
		return d
	}

	lines := sampleLines(sample)
	d.Separator = sniffSeparator(lines)
	d.HasHeader = sniffHeader(lines, d.Separator)
	return d
}

// sniffLineEnd picks the line ending that appears most often.
func sniffLineEnd(sample string) string {
	crlf := strings.Count(sample, "\r\n")
	lf := strings.Count(sample, "\n") - crlf
	cr := strings.Count(sample, "\r") - crlf

	switch {
	case crlf >= lf && crlf >= cr && crlf > 0:
		return "\r\n"
	case cr > lf:
		return "\r"
	default:
		return "\n"
	}
}

// sampleLines splits the sample into non-empty lines regardless of the line
// ending flavor.
func sampleLines(sample string) []string {
	sample = strings.ReplaceAll(sample, "\r\n", "\n")
	sample = strings.ReplaceAll(sample, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sniffSeparator scores each candidate by how many cells it yields and how
// consistent that count is across lines. A candidate that splits every line
// into the same number of cells beats one that merely appears often.
func sniffSeparator(lines []string) rune {
	best := ','
	bestScore := 0

	for _, cand := range sniffCandidates {
		var counts []int
		for _, line := range lines {
			counts = append(counts, countOutsideQuotes(line, cand))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		score := counts[0]
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = cand
			bestScore = score
		}
	}

	return best
}

// countOutsideQuotes counts occurrences of sep that are not inside a
// double-quoted span.
func countOutsideQuotes(line string, sep rune) int {
	count := 0
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == sep && !inQuotes:
			count++
		}
	}
	return count
}

// sniffHeader compares the first line against the next one: a header row is
// mostly non-numeric names over a data row that is not.
func sniffHeader(lines []string, sep rune) bool {
	if len(lines) < 2 {
		return false
	}

	first := splitOutsideQuotes(lines[0], sep)
	second := splitOutsideQuotes(lines[1], sep)
	if len(first) == 0 || len(second) == 0 {
		return false
	}

	firstNumeric := numericCells(first)
	secondNumeric := numericCells(second)

	// A header names its columns; data rows carry the numbers.
	return firstNumeric == 0 && secondNumeric > firstNumeric
}

// splitOutsideQuotes splits a line on sep, ignoring separators inside
// double-quoted spans.
func splitOutsideQuotes(line string, sep rune) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == sep && !inQuotes:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(cells, cur.String())
}

// numericCells counts the cells that parse as plain numbers.
func numericCells(cells []string) int {
	n := 0
	for _, c := range cells {
		if isNumeric(strings.TrimSpace(c)) {
			n++
		}
	}
	return n
}

// isNumeric reports whether s is an optionally signed decimal number.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	dot := false
	digits := 0
	for _, r := range s {
		switch {
		case r == '.':
			if dot {
				return false
			}
			dot = true
		case unicode.IsDigit(r):
			digits++
		default:
			return false
		}
	}
	return digits > 0
}
