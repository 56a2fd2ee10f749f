package dsv

// Table is a parsed document: the header row, the body rows, and one
// header-keyed mapping per body row.
//
// Rows and MappedRows describe the same body rows in two shapes. A body row
// shorter than the header maps missing positions to the empty string; cells
// beyond the header stay in Rows but are absent from the mapping. When the
// header repeats a name, the later column wins in the mapping — a quirk
// kept for compatibility, not an error.
type Table struct {
	Header     []string
	Rows       [][]string
	MappedRows []map[string]string
}

// Row provides positional and name-based access to one body row.
type Row struct {
	fields []string
	header []string
}

// Len returns the number of body rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Row returns the body row at index i.
// Returns (Row{}, false) when i is out of bounds.
func (t *Table) Row(i int) (Row, bool) {
	if i < 0 || i >= len(t.Rows) {
		return Row{}, false
	}
	return Row{fields: t.Rows[i], header: t.Header}, true
}

// Get returns the cell at index i.
// Returns ("", false) when i is out of bounds.
func (r Row) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// GetByName returns the cell under the named header column. With duplicate
// header names the first matching column wins here; the mapped form of the
// row keeps the last.
// Returns ("", false) when the name is not in the header.
func (r Row) GetByName(name string) (string, bool) {
	for i, h := range r.header {
		if h == name {
			if i >= len(r.fields) {
				return "", true
			}
			return r.fields[i], true
		}
	}
	return "", false
}

// Fields returns a copy of the row's cells.
func (r Row) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.fields)
}

// rowMajor flattens the table into header-first row-major form, the shape
// the stringifier works on. When Rows is empty but mappings are present,
// the rows are reconstructed by looking up each header name per mapping;
// missing names become empty cells.
func (t *Table) rowMajor() [][]string {
	rows := make([][]string, 0, len(t.Rows)+1)
	rows = append(rows, t.Header)

	if len(t.Rows) == 0 && len(t.MappedRows) > 0 {
		for _, m := range t.MappedRows {
			row := make([]string, len(t.Header))
			for i, name := range t.Header {
				row[i] = m[name]
			}
			rows = append(rows, row)
		}
		return rows
	}

	return append(rows, t.Rows...)
}
