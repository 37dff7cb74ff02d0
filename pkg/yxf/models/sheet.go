package models

import "slices"

// SheetName identifies one of the sheets an XLSForm may contain.
type SheetName string

const (
	// Survey holds the questions. Every form has one.
	Survey SheetName = "survey"
	// Choices holds the option lists referenced by select questions.
	Choices SheetName = "choices"
	// Settings holds form-level settings.
	Settings SheetName = "settings"
)

// SheetNames lists the recognized sheets in canonical order.
var SheetNames = []SheetName{Survey, Choices, Settings}

// ParseSheetName reports whether name is a recognized sheet name.
func ParseSheetName(name string) (SheetName, bool) {
	for _, s := range SheetNames {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// ValidateSheetName fails with InvalidSheetNameError when name is not a
// recognized sheet. source and line locate the offending text.
func ValidateSheetName(name, source string, line int) error {
	if _, ok := ParseSheetName(name); !ok {
		return &InvalidSheetNameError{Name: name, Source: source, Line: line}
	}
	return nil
}

// Sheet is a named, ordered list of rows. Row order is document order.
type Sheet struct {
	Name SheetName
	Rows []*Row
}

// Append adds rows at the end of the sheet.
func (s *Sheet) Append(rows ...*Row) {
	s.Rows = append(s.Rows, rows...)
}

// Insert places row at index i, shifting later rows down.
func (s *Sheet) Insert(i int, row *Row) {
	if i > len(s.Rows) {
		i = len(s.Rows)
	}
	s.Rows = slices.Insert(s.Rows, i, row)
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	c := &Sheet{Name: s.Name, Rows: make([]*Row, len(s.Rows))}
	for i, r := range s.Rows {
		c.Rows[i] = r.Clone()
	}
	return c
}
