package models

// CommentColumn is the reserved pseudo-column carrying free-text annotations.
const CommentColumn = "#"

// Row is an insertion-ordered mapping from column name to cell text.
//
// Keys are unique. Empty values are never stored: setting a key to ""
// removes it.
type Row struct {
	keys   []string
	values map[string]string
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{values: make(map[string]string)}
}

// RowOf builds a row from alternating key/value pairs.
func RowOf(pairs ...string) *Row {
	r := NewRow()
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

// Get returns the value stored for key.
func (r *Row) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value stored for key, or "" when absent.
func (r *Row) Value(key string) string {
	return r.values[key]
}

// Has reports whether key is present.
func (r *Row) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set stores value under key. A new key is appended after the existing
// ones; an existing key keeps its position.
func (r *Row) Set(key, value string) {
	if value == "" {
		r.Delete(key)
		return
	}
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes key from the row.
func (r *Row) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (r *Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of stored values.
func (r *Row) Len() int {
	return len(r.keys)
}

// Name returns the row's name field, or "(unnamed)" for error messages.
func (r *Row) Name() string {
	if name, ok := r.values["name"]; ok {
		return name
	}
	return "(unnamed)"
}

// Clone returns a deep copy of the row.
func (r *Row) Clone() *Row {
	c := NewRow()
	for _, k := range r.keys {
		c.Set(k, r.values[k])
	}
	return c
}

// Equal reports whether both rows hold the same keys in the same order with
// the same values.
func (r *Row) Equal(other *Row) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, k := range r.keys {
		if other.keys[i] != k || other.values[k] != r.values[k] {
			return false
		}
	}
	return true
}

// RowToDict zips headers and values positionally into a row.
//
// Pairs with an empty value are skipped. A non-empty value without a header,
// either because the header cell is empty or because there are more values
// than headers, fails with MissingHeaderError.
func RowToDict(headers, values []Cell) (*Row, error) {
	row := NewRow()
	for i, v := range values {
		if v.IsEmpty() {
			continue
		}
		if i >= len(headers) || headers[i].IsEmpty() {
			return nil, &MissingHeaderError{Column: i + 1, Value: v.String()}
		}
		row.Set(headers[i].String(), v.String())
	}
	return row, nil
}
