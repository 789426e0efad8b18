package model

// RawRow is an ordered header->value mapping for a single source row, as
// read by a format adapter before normalization. Values are untyped: cells
// arrive as strings from delimited text, and as strings or float64 from
// spreadsheets and JSON.
type RawRow struct {
	headers []string
	cells   map[string]any
}

// NewRawRow creates an empty RawRow.
func NewRawRow() *RawRow {
	return &RawRow{cells: make(map[string]any)}
}

// Set stores a cell value under a header. The header keeps its first
// declaration position; a duplicate header overwrites the value in place.
func (r *RawRow) Set(header string, value any) {
	if _, ok := r.cells[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.cells[header] = value
}

// Get returns the cell value for a header.
func (r *RawRow) Get(header string) (any, bool) {
	v, ok := r.cells[header]
	return v, ok
}

// Headers returns the column headers in declaration order.
func (r *RawRow) Headers() []string {
	return r.headers
}

// Len returns the number of distinct headers in the row.
func (r *RawRow) Len() int {
	return len(r.headers)
}
