package parser

import "strings"

// foldLineBreaks rewrites every line-break sequence to a single line feed in
// one left-to-right pass. Strict mode recognizes "\r\n" and lone "\r"; loose
// mode additionally folds "\n\r", matching a spreadsheet tool that emits it.
// The single pass matters: "\r\n\r" must be read as "\r\n" then "\r", never
// rescanned.
func foldLineBreaks(s string, loose bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
		case '\n':
			if loose && i+1 < len(s) && s[i+1] == '\r' {
				i++
			}
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// preprocess prepares raw text for the tokenizer: line breaks are folded to
// line feeds, a terminating line feed is guaranteed, and NUL characters are
// removed. The NUL strip runs after the fold so a NUL next to a "\r\n" pair
// cannot break its recognition.
//
// The tokenizer treats end of input as "line feed plus termination", so it
// must always see a final line feed to close the last row. When the caller
// declares the input's own trailing line feed to be content
// (requireTrailing), one more is appended unconditionally.
func preprocess(s string, loose, requireTrailing bool) string {
	s = foldLineBreaks(s, loose)
	if requireTrailing || !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	return strings.ReplaceAll(s, "\x00", "")
}
