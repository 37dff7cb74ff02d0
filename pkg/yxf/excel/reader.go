// Package excel reads and writes XLSForm workbooks.
package excel

import (
	"io"
	"os"
	"strconv"

	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"github.com/xuri/excelize/v2"
)

// ReadFile reads an XLSForm workbook from path.
func ReadFile(path string) (*models.Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read reads an XLSForm workbook. The survey, choices and settings sheets are
// converted to rows keyed by their header row; other sheets are ignored.
func Read(r io.Reader) (*models.Form, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, models.NewParseError("xlsx", "<workbook>", 0, err)
	}
	defer f.Close()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	form := models.New()
	for _, name := range models.SheetNames {
		if !present[string(name)] {
			continue
		}
		headers, rows, err := ExtractSheet(f, string(name))
		if err != nil {
			return nil, err
		}
		if err := models.CheckCommentColumn(name, headers); err != nil {
			return nil, err
		}
		form.AddSheet(name).Append(rows...)
		form.Headers.Set(name, headers)
	}

	if _, ok := form.Sheet(models.Survey); !ok {
		return nil, models.ErrMissingSurveySheet
	}
	return form, nil
}

// ExtractSheet returns the header row of a sheet and its non-empty content
// rows.
func ExtractSheet(f *excelize.File, sheetName string) ([]string, []*models.Row, error) {
	grid, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(grid) == 0 {
		return []string{}, nil, nil
	}

	headerCells := models.TrimCells(extractCells(f, sheetName, 1, grid[0]))
	headers := models.HeaderNames(headerCells)

	var rows []*models.Row
	for rowIdx := 1; rowIdx < len(grid); rowIdx++ {
		rowNum := rowIdx + 1 // 1-based row index
		values := models.TrimCells(extractCells(f, sheetName, rowNum, grid[rowIdx]))
		row, err := models.RowToDict(headerCells, values)
		if err != nil {
			return nil, nil, err
		}
		if row.Len() > 0 {
			rows = append(rows, row)
		}
	}
	return headers, rows, nil
}

// extractCells converts one grid row to cells. Zero-valued numeric and
// boolean cells count as empty; a true boolean reads as "True".
func extractCells(f *excelize.File, sheetName string, rowNum int, values []string) []models.Cell {
	cells := make([]models.Cell, len(values))
	for colIdx, v := range values {
		if v == "" {
			continue
		}
		if v == "1" || isZero(v) {
			cellName, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			typ, err := f.GetCellType(sheetName, cellName)
			switch {
			case err != nil:
			case typ == excelize.CellTypeBool && v == "1":
				v = "True"
			case isZero(v) && isNumericType(typ):
				continue
			}
		}
		cells[colIdx] = models.Text(v)
	}
	return cells
}

// isZero reports whether a raw cell value parses as the number zero.
func isZero(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f == 0
}

func isNumericType(typ excelize.CellType) bool {
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeBool, excelize.CellTypeUnset:
		return true
	}
	return false
}
