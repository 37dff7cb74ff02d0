// Package models defines the canonical form model shared by every codec.
package models

// Cell is a single spreadsheet-like value: either absent or text.
// Numeric, boolean and blank cells are resolved to a Cell at the codec
// boundary so the model only ever deals with strings.
type Cell struct {
	text  string
	valid bool
}

// Absent is the cell with no value.
var Absent = Cell{}

// Text returns a cell holding s.
func Text(s string) Cell {
	return Cell{text: s, valid: true}
}

// Cells converts strings to cells. An empty string becomes Absent.
func Cells(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = Text(v)
		}
	}
	return cells
}

// Value returns the cell text and whether the cell is present.
func (c Cell) Value() (string, bool) {
	return c.text, c.valid
}

// String returns the cell text, or "" for an absent cell.
func (c Cell) String() string {
	return c.text
}

// IsEmpty reports whether the cell is absent or holds the empty string.
func (c Cell) IsEmpty() bool {
	return !c.valid || c.text == ""
}

// TrimCells returns cells without trailing empty entries.
func TrimCells(cells []Cell) []Cell {
	end := len(cells)
	for end > 0 && cells[end-1].IsEmpty() {
		end--
	}
	return cells[:end]
}

// HeaderNames converts a header row to column names. Empty headers become "".
func HeaderNames(cells []Cell) []string {
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.String()
	}
	return names
}
