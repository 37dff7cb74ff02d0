package models

import "slices"

// HeaderSpec records, per sheet, the ordered column names used to write it.
// Sheets keep the order in which they were first set.
type HeaderSpec struct {
	names   []SheetName
	columns map[SheetName][]string
}

// Get returns the columns of sheet.
func (h *HeaderSpec) Get(sheet SheetName) ([]string, bool) {
	cols, ok := h.columns[sheet]
	return cols, ok
}

// Columns returns the columns of sheet, or nil when none are recorded.
func (h *HeaderSpec) Columns(sheet SheetName) []string {
	return h.columns[sheet]
}

// Has reports whether columns are recorded for sheet.
func (h *HeaderSpec) Has(sheet SheetName) bool {
	_, ok := h.columns[sheet]
	return ok
}

// Set records the columns of sheet.
func (h *HeaderSpec) Set(sheet SheetName, columns []string) {
	if h.columns == nil {
		h.columns = make(map[SheetName][]string)
	}
	if _, ok := h.columns[sheet]; !ok {
		h.names = append(h.names, sheet)
	}
	h.columns[sheet] = columns
}

// Names returns the sheets with recorded columns, in insertion order.
func (h *HeaderSpec) Names() []SheetName {
	return slices.Clone(h.names)
}

// Clone returns a deep copy.
func (h *HeaderSpec) Clone() HeaderSpec {
	var c HeaderSpec
	for _, name := range h.names {
		c.Set(name, slices.Clone(h.columns[name]))
	}
	return c
}

// EnsureCommentFirst makes "#" the first column of sheet, moving or inserting
// it as needed.
func (h *HeaderSpec) EnsureCommentFirst(sheet SheetName) {
	cols := h.columns[sheet]
	if len(cols) > 0 && cols[0] == CommentColumn {
		return
	}
	out := make([]string, 0, len(cols)+1)
	out = append(out, CommentColumn)
	for _, c := range cols {
		if c != CommentColumn {
			out = append(out, c)
		}
	}
	h.Set(sheet, out)
}

// CheckCommentColumn fails with CommentColumnPositionError when headers
// contain "#" anywhere but first.
func CheckCommentColumn(sheet SheetName, headers []string) error {
	if i := slices.Index(headers, CommentColumn); i > 0 {
		return &CommentColumnPositionError{Sheet: sheet}
	}
	return nil
}

// CheckRowKeys fails with InvalidKeyError for the first row key that does
// not appear in headers.
func CheckRowKeys(sheet SheetName, headers []string, row *Row) error {
	for _, k := range row.Keys() {
		if !slices.Contains(headers, k) {
			return &InvalidKeyError{Key: k, Row: row.Name(), Sheet: sheet}
		}
	}
	return nil
}
