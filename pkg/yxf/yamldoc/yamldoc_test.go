package yamldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/yxf-go/pkg/yxf/models"
)

const sampleYAML = `survey:
  - '#': Converted by yxf, from test.yaml. Edit the YAML file instead of the Excel file.
  - type: text
    name: name
    label: What is your name?
  - type: integer
    name: age
    label: What is your age?
    hint:
choices:
  - list_name: yes_no
    name: 'yes'
    label: 'Yes'
  - list_name: yes_no
    name: 'no'
    label: 'No'
settings:
  - form_title: Sample Form
    form_id: sample_form
yxf:
  headers:
    survey:
      - '#'
      - type
      - name
      - label
      - hint
    choices:
      - list_name
      - name
      - label
    settings:
      - form_title
      - form_id
`

func TestRead(t *testing.T) {
	form, err := Read([]byte(sampleYAML), "test.yaml")
	require.NoError(t, err)

	survey, ok := form.Sheet(models.Survey)
	require.True(t, ok)
	require.Len(t, survey.Rows, 3)
	assert.Equal(t, []string{"#"}, survey.Rows[0].Keys())
	assert.Equal(t, []string{"type", "name", "label"}, survey.Rows[2].Keys(), "null values are absent")

	choices, _ := form.Sheet(models.Choices)
	assert.Equal(t, "yes", choices.Rows[0].Name())
	assert.Equal(t, "Yes", choices.Rows[0].Value("label"))

	assert.Equal(t, []string{"#", "type", "name", "label", "hint"}, form.Columns(models.Survey))
	assert.Equal(t, []models.SheetName{models.Survey, models.Choices, models.Settings}, form.Headers.Names())
}

func TestReadKeepsScalarsAsText(t *testing.T) {
	doc := `yxf:
  headers:
    survey: [type, name, default, required]
survey:
  - type: integer
    name: q1
    default: 010
    required: true
`
	form, err := Read([]byte(doc), "test.yaml")
	require.NoError(t, err)

	survey, _ := form.Sheet(models.Survey)
	assert.Equal(t, "010", survey.Rows[0].Value("default"))
	assert.Equal(t, "true", survey.Rows[0].Value("required"))
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, err error)
	}{
		{
			name: "missing survey",
			doc: `yxf:
  headers:
    survey: [name, type, label]
choices:
  - name: "yes"
`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrMissingSurveyEntry)
				assert.Contains(t, err.Error(), `must have a "survey" entry`)
			},
		},
		{
			name: "missing yxf",
			doc: `survey:
  - name: q1
    type: text
`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrMissingYxfMetadata)
				assert.Contains(t, err.Error(), `must have a "yxf" entry`)
			},
		},
		{
			name: "empty document",
			doc:  "",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrMissingYxfMetadata)
			},
		},
		{
			name: "missing survey headers",
			doc: `yxf:
  headers:
    choices: [name]
survey:
  - name: q1
`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, models.ErrMissingYxfMetadata)
			},
		},
		{
			name: "malformed",
			doc: `survey:
  - name: q1
    type: text
  label: invalid indentation
`,
			check: func(t *testing.T, err error) {
				var target *models.ParseError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "yaml", target.Format)
				assert.NotErrorIs(t, err, models.ErrMissingSurveyEntry)
			},
		},
		{
			name: "invalid sheet name",
			doc: `yxf:
  headers:
    survey: [name]
survey:
  - name: q1
external:
  - name: x
`,
			check: func(t *testing.T, err error) {
				var target *models.InvalidSheetNameError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, "test.yaml", target.Source)
				assert.Equal(t, 6, target.Line)
			},
		},
		{
			name: "comment column not first",
			doc: `yxf:
  headers:
    survey: [name, '#']
survey:
  - name: q1
`,
			check: func(t *testing.T, err error) {
				var target *models.CommentColumnPositionError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name: "nested value",
			doc: `yxf:
  headers:
    survey: [name, label]
survey:
  - name: q1
    label:
      english: Q1
`,
			check: func(t *testing.T, err error) {
				var target *models.ParseError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, 7, target.Line)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read([]byte(tt.doc), "test.yaml")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestWriteMetadataFirst(t *testing.T) {
	form := models.New()
	form.AddSheet(models.Survey).Append(models.RowOf("type", "text", "name", "q1"))
	form.Headers.Set(models.Survey, []string{"name", "type"})

	out, err := Write(form)
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "yxf:\n"), text)
	assert.Contains(t, text, "\nsurvey:\n")
	assert.Contains(t, text, "  - name: q1\n    type: text\n", "row keys follow header order")
}

func TestWriteRoundTrip(t *testing.T) {
	form, err := Read([]byte(sampleYAML), "test.yaml")
	require.NoError(t, err)
	survey, _ := form.Sheet(models.Survey)
	survey.Rows[1].Set("hint", "First line\nsecond line")
	survey.Rows[2].Set("label", " yes | no: #")

	out, err := Write(form)
	require.NoError(t, err)

	got, err := Read(out, "out.yaml")
	require.NoError(t, err)
	for _, want := range form.Sheets() {
		sheet, ok := got.Sheet(want.Name)
		require.True(t, ok)
		require.Len(t, sheet.Rows, len(want.Rows))
		for i := range want.Rows {
			assert.True(t, want.Rows[i].Equal(sheet.Rows[i]), "sheet %s row %d: %v", want.Name, i, sheet.Rows[i].Keys())
		}
		assert.Equal(t, form.Columns(want.Name), got.Columns(want.Name))
	}
}

func TestWriteLineBreaks(t *testing.T) {
	values := []string{
		"\na",
		"\n",
		"\n\n",
		" \n ",
		"a\n",
		"a\n\n",
		"  indented\nline",
		"First line\nsecond line",
	}
	for _, v := range values {
		form := models.New()
		form.AddSheet(models.Survey).Append(models.RowOf("type", "note", "label", v))
		form.Headers.Set(models.Survey, []string{"type", "label"})

		out, err := Write(form)
		require.NoError(t, err, "%q", v)
		got, err := Read(out, "out.yaml")
		require.NoError(t, err, "%q", v)

		survey, _ := got.Sheet(models.Survey)
		require.Len(t, survey.Rows, 1)
		assert.Equal(t, v, survey.Rows[0].Value("label"), "%q", v)
	}
}

func TestWriteEmptySheet(t *testing.T) {
	form := models.New()
	form.AddSheet(models.Survey)
	form.Headers.Set(models.Survey, []string{"type", "name"})

	out, err := Write(form)
	require.NoError(t, err)

	got, err := Read(out, "out.yaml")
	require.NoError(t, err)
	survey, _ := got.Sheet(models.Survey)
	require.Len(t, survey.Rows, 1)
	assert.Equal(t, "Empty survey sheet", survey.Rows[0].Value("#"))
	assert.Equal(t, []string{"#", "type", "name"}, got.Columns(models.Survey))

	orig, _ := form.Sheet(models.Survey)
	assert.Empty(t, orig.Rows, "input form is not modified")
	assert.Equal(t, []string{"type", "name"}, form.Columns(models.Survey))
}

func TestWriteInvalidKey(t *testing.T) {
	form := models.New()
	form.AddSheet(models.Survey).Append(models.RowOf("name", "q1", "bogus", "x"))
	form.Headers.Set(models.Survey, []string{"name"})

	_, err := Write(form)
	var target *models.InvalidKeyError
	require.ErrorAs(t, err, &target)
	assert.Contains(t, err.Error(), "bogus")
}
