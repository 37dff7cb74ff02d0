package excel

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"github.com/xuri/excelize/v2"
)

// Beautifier applies presentation-only formatting to a written workbook.
// It must not change cell values and must be idempotent.
type Beautifier interface {
	Beautify(f *excelize.File, headers models.HeaderSpec) error
}

// NopBeautifier leaves the workbook untouched.
type NopBeautifier struct{}

// Beautify implements Beautifier.
func (NopBeautifier) Beautify(*excelize.File, models.HeaderSpec) error { return nil }

// Theme is the default Beautifier. It knows a few XLSForm column names and
// row types, and colors the comment column to show the group structure.
type Theme struct {
	HeaderFont  excelize.Font
	CodeFont    excelize.Font
	NameFont    excelize.Font
	CommentFont excelize.Font
	NoteFont    excelize.Font

	// CodeColumns hold expressions and are rendered with CodeFont.
	CodeColumns []string

	// GroupColor is the fill of the first top-level group.
	GroupColor string
	// GroupHueStep rotates the hue for each following top-level group (degrees).
	GroupHueStep float64
	// NestingDarken lowers HSL lightness for each nested group level.
	NestingDarken float64

	// Column widths are the 75th percentile of the content widths plus
	// WidthPadding, capped at MaxWidth. Capped columns wrap their text.
	WidthPadding float64
	MaxWidth     float64
	EmptyWidth   float64
	CommentWidth float64
}

// DefaultTheme returns the theme used by NewWriter.
func DefaultTheme() Theme {
	return Theme{
		HeaderFont:    excelize.Font{Bold: true},
		CodeFont:      excelize.Font{Family: "Courier New", Color: "19007D"},
		NameFont:      excelize.Font{Family: "Courier New", Color: "A13B16"},
		CommentFont:   excelize.Font{Family: "Courier New", Color: "009C5D"},
		NoteFont:      excelize.Font{Color: "555555"},
		CodeColumns:   []string{"calculation", "relevant", "constraint", "repeat_count", "instance_name"},
		GroupColor:    "#c7ffdb",
		GroupHueStep:  20,
		NestingDarken: 0.05,
		WidthPadding:  10,
		MaxWidth:      60,
		EmptyWidth:    10,
		CommentWidth:  2,
	}
}

type fontKind int

const (
	fontDefault fontKind = iota
	fontHeader
	fontCode
	fontName
	fontComment
	fontNote
)

type styleKey struct {
	font fontKind
	fill string
	wrap bool
}

// Beautify implements Beautifier.
func (t Theme) Beautify(f *excelize.File, headers models.HeaderSpec) error {
	base, err := colorful.Hex(t.GroupColor)
	if err != nil {
		return fmt.Errorf("invalid group color %q: %w", t.GroupColor, err)
	}

	styles := make(map[styleKey]int)
	for _, name := range f.GetSheetList() {
		s := &sheetStyler{theme: t, base: base, f: f, sheet: name, styles: styles}
		if err := s.apply(headers.Columns(models.SheetName(name))); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	return nil
}

// GroupFill returns the fill color (RRGGBB) of a row inside the group-th
// top-level group at the given nesting depth. Both start at 1.
func (t Theme) GroupFill(group, depth int) (string, error) {
	base, err := colorful.Hex(t.GroupColor)
	if err != nil {
		return "", err
	}
	return groupFill(base, t.GroupHueStep, t.NestingDarken, group, depth), nil
}

func groupFill(base colorful.Color, hueStep, darken float64, group, depth int) string {
	h, s, v := base.Hsv()
	h = math.Mod(h+hueStep*float64(group-1), 360)
	c := colorful.Hsv(h, s, v)
	for i := 1; i < depth; i++ {
		hh, ss, l := c.Hsl()
		c = colorful.Hsl(hh, ss, math.Max(0, l-darken))
	}
	return strings.ToUpper(strings.TrimPrefix(c.Hex(), "#"))
}

type sheetStyler struct {
	theme  Theme
	base   colorful.Color
	f      *excelize.File
	sheet  string
	styles map[styleKey]int
}

func (s *sheetStyler) apply(headers []string) error {
	grid, err := s.f.GetRows(s.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}
	if headers == nil && len(grid) > 0 {
		headers = grid[0]
	}
	if len(headers) == 0 {
		return nil
	}

	if err := s.f.SetPanes(s.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	for col := range headers {
		if err := s.setStyle(col+1, 1, styleKey{font: fontHeader}); err != nil {
			return err
		}
	}

	commentCol := slices.Index(headers, models.CommentColumn)
	typeCol := slices.Index(headers, "type")
	wrap, err := s.setWidths(grid, len(headers), commentCol)
	if err != nil {
		return err
	}

	group, depth := 0, 0
	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		typ := cellAt(row, typeCol)

		if strings.HasPrefix(typ, "begin_") {
			if depth == 0 {
				group++
			}
			depth++
		}

		fill := ""
		if depth > 0 && commentCol >= 0 {
			fill = groupFill(s.base, s.theme.GroupHueStep, s.theme.NestingDarken, group, depth)
		}

		for col, header := range headers {
			value := cellAt(row, col)
			key := styleKey{wrap: wrap[col]}
			if col == commentCol {
				key.fill = fill
			}
			if value == "" && key.fill == "" {
				continue
			}
			switch {
			case slices.Contains(s.theme.CodeColumns, header):
				key.font = fontCode
			case header == "name":
				key.font = fontName
			case header == models.CommentColumn:
				key.font = fontComment
			case typ == "note":
				key.font = fontNote
			}
			if err := s.setStyle(col+1, rowIdx+1, key); err != nil {
				return err
			}
		}

		if strings.HasPrefix(typ, "end_") && depth > 0 {
			depth--
		}
	}
	return nil
}

// setWidths sizes every column and reports which ones wrap.
func (s *sheetStyler) setWidths(grid [][]string, numCols, commentCol int) ([]bool, error) {
	widths := make([][]int, numCols)
	for rowIdx, row := range grid {
		if rowIdx == 0 {
			continue
		}
		for col := 0; col < numCols && col < len(row); col++ {
			if row[col] == "" {
				continue
			}
			w := 0
			for _, line := range strings.Split(row[col], "\n") {
				w = max(w, runewidth.StringWidth(line))
			}
			widths[col] = append(widths[col], w)
		}
	}

	wrap := make([]bool, numCols)
	for col, ws := range widths {
		var width float64
		switch {
		case col == commentCol:
			width = s.theme.CommentWidth
		case len(ws) == 0:
			width = s.theme.EmptyWidth
		default:
			slices.Sort(ws)
			width = float64(ws[len(ws)*3/4]) + s.theme.WidthPadding
		}
		if width > s.theme.MaxWidth {
			width = s.theme.MaxWidth
			wrap[col] = true
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := s.f.SetColWidth(s.sheet, name, name, width); err != nil {
			return nil, err
		}
	}
	return wrap, nil
}

func (s *sheetStyler) setStyle(col, row int, key styleKey) error {
	id, ok := s.styles[key]
	if !ok {
		var err error
		id, err = s.f.NewStyle(s.theme.style(key))
		if err != nil {
			return err
		}
		s.styles[key] = id
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.f.SetCellStyle(s.sheet, cell, cell, id)
}

func (t Theme) style(key styleKey) *excelize.Style {
	st := &excelize.Style{}
	var font excelize.Font
	switch key.font {
	case fontHeader:
		font = t.HeaderFont
	case fontCode:
		font = t.CodeFont
	case fontName:
		font = t.NameFont
	case fontComment:
		font = t.CommentFont
	case fontNote:
		font = t.NoteFont
	}
	if key.font != fontDefault {
		st.Font = &font
	}
	if key.fill != "" {
		st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{key.fill}}
	}
	if key.wrap {
		st.Alignment = &excelize.Alignment{WrapText: true, Vertical: "top"}
	}
	return st
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
