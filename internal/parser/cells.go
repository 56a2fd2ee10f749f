package parser

import "strings"

// unquoteCell strips the quoting from one raw cell: optional leading spaces,
// a quote, any content, a quote, optional trailing spaces. The leading spaces
// and both quotes are removed; the spaces after the closing quote stay in
// the cell unless trimPadding is set. Doubled quotes in the result collapse
// to one. Cells that do not match the quoted shape pass through untouched —
// doubling is an escape only inside a recognized quoted span.
//
// A space quote is a degenerate dialect: the quoted shape is then exactly
// one leading and one trailing space, with no padding allowed.
func unquoteCell(cell string, quote rune, trimPadding bool) string {
	if quote == 0 {
		return cell
	}

	q := string(quote)
	if quote == ' ' {
		r := []rune(cell)
		if len(r) < 2 || r[0] != ' ' || r[len(r)-1] != ' ' {
			return cell
		}
		return strings.ReplaceAll(string(r[1:len(r)-1]), q+q, q)
	}

	r := []rune(cell)
	i := 0
	for i < len(r) && r[i] == ' ' {
		i++
	}
	if i >= len(r) || r[i] != quote {
		return cell
	}
	j := len(r) - 1
	for j > i && r[j] == ' ' {
		j--
	}
	if j <= i || r[j] != quote {
		return cell
	}

	out := string(r[i+1 : j])
	if !trimPadding {
		out += strings.Repeat(" ", len(r)-1-j)
	}
	return strings.ReplaceAll(out, q+q, q)
}
