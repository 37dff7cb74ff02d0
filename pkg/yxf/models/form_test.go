package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() *Form {
	f := New()
	survey := f.AddSheet(Survey)
	survey.Append(RowOf("type", "text", "name", "q1"))
	f.Headers.Set(Survey, []string{"type", "name"})
	return f
}

func TestFormSheetsKeepOrder(t *testing.T) {
	f := New()
	f.AddSheet(Settings)
	f.AddSheet(Survey)
	f.AddSheet(Settings)

	sheets := f.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, Settings, sheets[0].Name)
	assert.Equal(t, Survey, sheets[1].Name)
}

func TestFormValidate(t *testing.T) {
	assert.NoError(t, sampleForm().Validate())

	f := New()
	f.AddSheet(Choices)
	assert.ErrorIs(t, f.Validate(), ErrMissingSurveySheet)

	f.AddSheet(Survey)
	assert.ErrorIs(t, f.Validate(), ErrMissingSurveySheet, "survey without headers")
}

func TestFormClone(t *testing.T) {
	f := sampleForm()
	c := f.Clone()
	s, _ := c.Sheet(Survey)
	s.Rows[0].Set("label", "Q1")
	c.Headers.EnsureCommentFirst(Survey)

	orig, _ := f.Sheet(Survey)
	assert.False(t, orig.Rows[0].Has("label"))
	assert.Equal(t, []string{"type", "name"}, f.Columns(Survey))
}

func TestSheetInsert(t *testing.T) {
	s := &Sheet{Name: Survey}
	s.Insert(0, RowOf("name", "b"))
	s.Insert(0, RowOf("name", "a"))
	s.Insert(5, RowOf("name", "c"))

	var names []string
	for _, r := range s.Rows {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestEnsureCommentFirst(t *testing.T) {
	var h HeaderSpec
	h.Set(Survey, []string{"type", "#", "name"})
	h.EnsureCommentFirst(Survey)
	assert.Equal(t, []string{"#", "type", "name"}, h.Columns(Survey))

	h.EnsureCommentFirst(Choices)
	assert.Equal(t, []string{"#"}, h.Columns(Choices))
	assert.Equal(t, []SheetName{Survey, Choices}, h.Names())
}
