// Package markdown converts forms to and from Markdown documents.
//
// Each sheet is a level-2 heading followed by a pipe table. Paragraphs are
// comments: they become rows holding only the "#" column, placed before the
// rows of the table that follows them, or at the end of the sheet when no
// table follows. A paragraph of the form "%% choices" names the sheet of the
// next table without a heading.
package markdown

import (
	"bytes"
	"regexp"
	"slices"
	"strings"

	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var sheetDirective = regexp.MustCompile(`^%%\s*(.*)`)

type readState int

const (
	stateNoSheet readState = iota
	stateSheetOpen
	stateSheetComments
)

type reader struct {
	source  string
	content []byte
	form    *models.Form

	state   readState
	sheet   models.SheetName
	pending []*models.Row
}

// Read parses a Markdown document into a form. source names the document in
// error messages; line numbers are 1-based.
func Read(content []byte, source string) (*models.Form, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(content))

	r := &reader{source: source, content: content, form: models.New()}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		var err error
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				err = r.heading(node)
			}
		case *ast.Paragraph:
			err = r.paragraph(node)
		case *extast.Table:
			err = r.table(node)
		}
		if err != nil {
			return nil, err
		}
	}
	r.flush()
	if err := r.form.Validate(); err != nil {
		return nil, err
	}
	return r.form, nil
}

func (r *reader) heading(n *ast.Heading) error {
	name := strings.TrimSpace(r.blockText(n))
	if err := models.ValidateSheetName(name, r.source, r.line(n)); err != nil {
		return err
	}
	r.flush()
	r.sheet = models.SheetName(name)
	r.state = stateSheetOpen
	if len(r.pending) > 0 {
		r.state = stateSheetComments
	}
	return nil
}

// flush appends comments that no table followed to the open sheet. Comments
// seen before any sheet is named stay pending for the first one.
func (r *reader) flush() {
	if r.state == stateNoSheet || len(r.pending) == 0 {
		return
	}
	r.form.AddSheet(r.sheet).Append(r.pending...)
	r.pending = nil
	r.form.Headers.EnsureCommentFirst(r.sheet)
}

func (r *reader) paragraph(n *ast.Paragraph) error {
	content := r.blockText(n)
	if m := sheetDirective.FindStringSubmatch(content); m != nil {
		name := strings.TrimSpace(m[1])
		if err := models.ValidateSheetName(name, r.source, r.line(n)); err != nil {
			return err
		}
		r.sheet = models.SheetName(name)
		if r.state == stateNoSheet {
			r.state = stateSheetOpen
		}
		if len(r.pending) > 0 {
			r.state = stateSheetComments
		}
		return nil
	}

	r.pending = append(r.pending, models.RowOf(models.CommentColumn, content))
	if r.state == stateSheetOpen {
		r.state = stateSheetComments
	}
	return nil
}

func (r *reader) table(n *extast.Table) error {
	if r.state == stateNoSheet {
		return &models.NoSheetNameError{Source: r.source, Line: r.line(n)}
	}

	var headers []models.Cell
	var grid [][]models.Cell
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		cells := r.cells(row)
		if _, ok := row.(*extast.TableHeader); ok {
			headers = cells
			continue
		}
		grid = append(grid, cells)
	}

	addComment := r.state == stateSheetComments && (len(headers) == 0 || headers[0].String() != models.CommentColumn)
	if addComment {
		headers = append([]models.Cell{models.Text(models.CommentColumn)}, headers...)
	}
	names := models.HeaderNames(headers)
	if err := models.CheckCommentColumn(r.sheet, names); err != nil {
		return err
	}

	sheet := r.form.AddSheet(r.sheet)
	sheet.Append(r.pending...)
	r.pending = nil

	for _, values := range grid {
		if addComment {
			values = append([]models.Cell{models.Absent}, values...)
		}
		row, err := models.RowToDict(headers, values)
		if err != nil {
			return err
		}
		if row.Len() > 0 {
			sheet.Append(row)
		}
	}

	r.form.Headers.Set(r.sheet, mergeHeaders(r.form.Columns(r.sheet), names))
	r.state = stateSheetOpen
	return nil
}

// mergeHeaders appends the columns of next missing from prev. A merged "#"
// stays first.
func mergeHeaders(prev, next []string) []string {
	if prev == nil {
		return next
	}
	out := append([]string{}, prev...)
	for _, h := range next {
		if slices.Contains(out, h) {
			continue
		}
		if h == models.CommentColumn {
			out = append([]string{h}, out...)
		} else {
			out = append(out, h)
		}
	}
	return out
}

// cells returns the unescaped text of every cell in a table row.
func (r *reader) cells(row ast.Node) []models.Cell {
	var cells []models.Cell
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, models.Text(unescapeCell(r.blockText(c))))
	}
	return cells
}

// blockText returns the raw source text of a block node, one line per
// segment.
func (r *reader) blockText(n ast.Node) string {
	lines := n.Lines()
	if lines == nil {
		return ""
	}
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		parts = append(parts, strings.TrimRight(string(seg.Value(r.content)), " \t\r\n"))
	}
	return strings.Join(parts, "\n")
}

// line returns the 1-based source line where n starts.
func (r *reader) line(n ast.Node) int {
	offset, ok := startOffset(n)
	if !ok {
		return 0
	}
	return bytes.Count(r.content[:offset], []byte("\n")) + 1
}

func startOffset(n ast.Node) (int, bool) {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			return lines.At(0).Start, true
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if offset, ok := startOffset(c); ok {
			return offset, true
		}
	}
	return 0, false
}
