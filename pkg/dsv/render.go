package dsv

import "strings"

// StringifyWithOptions writes a table back to delimited text.
//
// Accepted shapes:
//   - [][]string: row-major, first row is the header
//   - *Table or Table: when Rows is empty but MappedRows is not, the body
//     is reconstructed from the mappings in header order
//
// Any other value is a programming error and returns ErrUnsupportedInput.
//
// A cell is quoted exactly when its content requires it: it contains a line
// feed, the quote character, or the separator. Quoting wraps the cell in
// the quote character and doubles every quote inside it.
func StringifyWithOptions(v any, opts WriteOptions) (string, error) {
	rows, err := rowsOf(v)
	if err != nil {
		return "", err
	}
	return render(rows, opts.sanitized()), nil
}

// rowsOf resolves the accepted input shapes to row-major form.
func rowsOf(v any) ([][]string, error) {
	switch t := v.(type) {
	case [][]string:
		return t, nil
	case *Table:
		if t == nil {
			return nil, unsupportedInput(v)
		}
		return t.rowMajor(), nil
	case Table:
		return t.rowMajor(), nil
	default:
		return nil, unsupportedInput(v)
	}
}

// render joins the rows into text, trimming trailing emptiness first when
// configured. Row and column trimming are independent convergence loops;
// columns are judged against the row-trimmed set.
func render(rows [][]string, opts WriteOptions) string {
	if opts.TrimEmpty {
		for len(rows) > 0 && emptyRow(rows[len(rows)-1]) {
			rows = rows[:len(rows)-1]
		}
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if opts.TrimEmpty {
		for width > 0 && emptyColumn(rows, width-1) {
			width--
		}
	}

	buf := getBuilder()
	defer putBuilder(buf)

	for i, row := range rows {
		if i > 0 {
			buf.WriteString(opts.LineEnd)
		}
		for c := 0; c < width; c++ {
			if c > 0 {
				buf.WriteRune(opts.Separator)
			}
			if c < len(row) {
				writeCell(buf, row[c], opts)
			}
		}
	}
	if opts.TrailingLineEnd && len(rows) > 0 {
		buf.WriteString(opts.LineEnd)
	}

	return buf.String()
}

// writeCell writes one cell, quoting only when the content demands it.
func writeCell(buf *strings.Builder, cell string, opts WriteOptions) {
	needsQuoting := strings.ContainsRune(cell, opts.Separator) ||
		strings.ContainsRune(cell, '\n') ||
		(opts.Quote != 0 && strings.ContainsRune(cell, opts.Quote))

	if !needsQuoting || opts.Quote == 0 {
		buf.WriteString(cell)
		return
	}

	buf.WriteRune(opts.Quote)
	for _, r := range cell {
		if r == opts.Quote {
			buf.WriteRune(opts.Quote)
		}
		buf.WriteRune(r)
	}
	buf.WriteRune(opts.Quote)
}

// emptyRow reports whether every cell of the row is empty.
func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// emptyColumn reports whether column c is empty or absent in every row.
func emptyColumn(rows [][]string, c int) bool {
	for _, row := range rows {
		if c < len(row) && row[c] != "" {
			return false
		}
	}
	return true
}
