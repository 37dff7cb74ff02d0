package markdown

import (
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/yxf-go/pkg/yxf/models"
)

// Writer renders forms as Markdown.
type Writer struct {
	// Source names the form in warnings. Defaults to "<source>".
	Source string
	// Logger receives multi-line value warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// Write renders form as Markdown. Comment rows become paragraphs before each
// sheet's table; the "#" column is not part of the table.
func (w Writer) Write(form *models.Form) ([]byte, error) {
	form = form.Clone()
	source := w.Source
	if source == "" {
		source = "<source>"
	}
	logger := w.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var md []string
	for _, name := range models.SheetNames {
		sheet, ok := form.Sheet(name)
		if !ok {
			continue
		}
		headers := form.Columns(name)
		for _, row := range sheet.Rows {
			if err := models.CheckRowKeys(name, headers, row); err != nil {
				return nil, err
			}
		}

		md = append(md, "## "+string(name), "")
		for _, row := range sheet.Rows {
			if c, ok := row.Get(models.CommentColumn); ok {
				if c != "" {
					md = append(md, c, "")
				}
				row.Delete(models.CommentColumn)
			}
		}
		if len(headers) > 0 && headers[0] == models.CommentColumn {
			headers = headers[1:]
		}
		if len(headers) == 0 {
			continue
		}

		for i, row := range sheet.Rows {
			for _, k := range row.Keys() {
				v := row.Value(k)
				if strings.Contains(v, "\n") {
					logger.Warn("multi-line value replaced by a single line; Markdown does not support multi-line values, use YAML instead",
						"source", source, "row", i+2, "column", k)
					v = strings.ReplaceAll(v, "\n", " ")
				}
				row.Set(k, escapeCell(v))
			}
		}

		widths := make([]int, len(headers))
		for i, h := range headers {
			widths[i] = max(runewidth.StringWidth(h), 1)
			for _, row := range sheet.Rows {
				widths[i] = max(widths[i], runewidth.StringWidth(row.Value(h)))
			}
		}

		separator := make([]string, len(headers))
		for i, width := range widths {
			separator[i] = strings.Repeat("-", width)
		}
		md = append(md, tableRow(headers, widths), tableRow(separator, widths))
		for _, row := range sheet.Rows {
			if row.Len() == 0 {
				continue
			}
			values := make([]string, len(headers))
			for i, h := range headers {
				values[i] = row.Value(h)
			}
			md = append(md, tableRow(values, widths))
		}
		md = append(md, "")
	}
	return []byte(strings.Join(md, "\n")), nil
}

func tableRow(values []string, widths []int) string {
	padded := make([]string, len(values))
	for i, v := range values {
		padded[i] = runewidth.FillRight(v, widths[i])
	}
	return "| " + strings.Join(padded, " | ") + " |"
}
