package excel

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"github.com/xuri/excelize/v2"
)

// Writer writes forms as XLSForm workbooks.
type Writer struct {
	// Beautifier styles the workbook after the data is written.
	// If nil, the workbook is left unstyled.
	Beautifier Beautifier
}

// NewWriter returns a Writer that styles workbooks with the default theme.
func NewWriter() *Writer {
	return &Writer{Beautifier: DefaultTheme()}
}

// WriteFile writes form to path. Nothing is created if writing fails.
func (w *Writer) WriteFile(form *models.Form, path string) error {
	var buf bytes.Buffer
	if err := w.Write(form, &buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Write writes form as a workbook to out.
func (w *Writer) Write(form *models.Form, out io.Writer) error {
	f, err := w.Build(form)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(out)
}

// Build lays out form in a new workbook. The caller must close it.
func (w *Writer) Build(form *models.Form) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	sheets := form.Sheets()
	for _, sheet := range sheets {
		if _, err := f.NewSheet(string(sheet.Name)); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, sheet, form.Columns(sheet.Name)); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(sheets) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			f.Close()
			return nil, err
		}
		f.SetActiveSheet(0)
	}

	if w.Beautifier != nil {
		if err := w.Beautifier.Beautify(f, form.Headers.Clone()); err != nil {
			f.Close()
			return nil, fmt.Errorf("beautify workbook: %w", err)
		}
	}
	return f, nil
}

// writeSheet writes the header row and the data rows of one sheet.
// A blank row separates groups and choice lists.
func writeSheet(f *excelize.File, sheet *models.Sheet, headers []string) error {
	name := string(sheet.Name)
	for i, key := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellStr(name, cell, key); err != nil {
			return err
		}
	}

	nextRow := 2
	var previousListName string
	if len(sheet.Rows) > 0 {
		previousListName = sheet.Rows[0].Value("list_name")
	}

	for _, row := range sheet.Rows {
		if row.Value("type") == "begin_group" {
			nextRow++
		}
		if listName := row.Value("list_name"); listName != previousListName {
			previousListName = listName
			nextRow++
		}

		if err := models.CheckRowKeys(sheet.Name, headers, row); err != nil {
			return err
		}

		for i, key := range headers {
			v, ok := row.Get(key)
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, nextRow)
			if err := f.SetCellStr(name, cell, v); err != nil {
				return err
			}
		}
		nextRow++
	}
	return nil
}
