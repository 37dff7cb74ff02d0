package models

// Form is the canonical in-memory representation of a survey definition:
// named sheets of ordered rows plus the header metadata used to write them.
type Form struct {
	sheets  []*Sheet
	Headers HeaderSpec
}

// New returns an empty form.
func New() *Form {
	return &Form{}
}

// Sheet returns the sheet called name.
func (f *Form) Sheet(name SheetName) (*Sheet, bool) {
	for _, s := range f.sheets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// AddSheet returns the sheet called name, creating an empty one at the end
// of the form if it does not exist yet.
func (f *Form) AddSheet(name SheetName) *Sheet {
	if s, ok := f.Sheet(name); ok {
		return s
	}
	s := &Sheet{Name: name}
	f.sheets = append(f.sheets, s)
	return s
}

// Sheets returns the sheets in form order.
func (f *Form) Sheets() []*Sheet {
	out := make([]*Sheet, len(f.sheets))
	copy(out, f.sheets)
	return out
}

// Clone returns a deep copy of the form.
func (f *Form) Clone() *Form {
	c := &Form{Headers: f.Headers.Clone()}
	for _, s := range f.sheets {
		c.sheets = append(c.sheets, s.Clone())
	}
	return c
}

// Validate checks that the form has a survey sheet with recorded headers.
func (f *Form) Validate() error {
	if _, ok := f.Sheet(Survey); !ok {
		return ErrMissingSurveySheet
	}
	if !f.Headers.Has(Survey) {
		return ErrMissingSurveySheet
	}
	return nil
}

// Columns returns the recorded headers of sheet, or nil.
func (f *Form) Columns(sheet SheetName) []string {
	return f.Headers.Columns(sheet)
}
