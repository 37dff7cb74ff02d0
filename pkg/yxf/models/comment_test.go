package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantComment = "Converted by yxf, from form.xlsx. Edit the YAML file instead of the Excel file."

func TestEnsureCommentInsertsRow(t *testing.T) {
	f := sampleForm()
	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))

	survey, _ := f.Sheet(Survey)
	require.Len(t, survey.Rows, 2)
	assert.Equal(t, wantComment, survey.Rows[0].Value("#"))
	assert.Equal(t, "q1", survey.Rows[1].Name())
	assert.Equal(t, []string{"#", "type", "name"}, f.Columns(Survey))
}

func TestEnsureCommentIsIdempotent(t *testing.T) {
	f := sampleForm()
	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))
	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))

	survey, _ := f.Sheet(Survey)
	require.Len(t, survey.Rows, 2)
	assert.Equal(t, wantComment, survey.Rows[0].Value("#"))
	assert.Equal(t, []string{"#", "type", "name"}, f.Columns(Survey))
}

func TestEnsureCommentOverwritesProvenance(t *testing.T) {
	f := sampleForm()
	require.NoError(t, EnsureComment(f, "old.md", "Markdown"))
	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))

	survey, _ := f.Sheet(Survey)
	require.Len(t, survey.Rows, 2)
	assert.Equal(t, wantComment, survey.Rows[0].Value("#"))
}

func TestEnsureCommentKeepsUserComment(t *testing.T) {
	f := sampleForm()
	survey, _ := f.Sheet(Survey)
	survey.Insert(0, RowOf("#", "Ask politely"))
	f.Headers.Set(Survey, []string{"#", "type", "name"})

	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))
	require.Len(t, survey.Rows, 3)
	assert.Equal(t, wantComment, survey.Rows[0].Value("#"))
	assert.Equal(t, "Ask politely", survey.Rows[1].Value("#"))
}

func TestEnsureCommentEmptySurvey(t *testing.T) {
	f := New()
	f.AddSheet(Survey)
	f.Headers.Set(Survey, []string{"type"})

	require.NoError(t, EnsureComment(f, "form.xlsx", "YAML"))
	survey, _ := f.Sheet(Survey)
	require.Len(t, survey.Rows, 1)
	assert.Equal(t, []string{"#", "type"}, f.Columns(Survey))
}

func TestEnsureCommentWithoutSurvey(t *testing.T) {
	assert.ErrorIs(t, EnsureComment(New(), "x", "YAML"), ErrMissingSurveySheet)
}
