package models

import (
	"errors"
	"fmt"
)

// ErrMissingSurveySheet indicates a workbook or form without a survey sheet.
var ErrMissingSurveySheet = errors.New(`an XLSForm must have a "survey" sheet`)

// ErrMissingSurveyEntry indicates a YAML document without a survey entry.
var ErrMissingSurveyEntry = errors.New(`YAML file must have a "survey" entry`)

// ErrMissingYxfMetadata indicates a YAML document without the yxf header block.
var ErrMissingYxfMetadata = errors.New(`YAML file must have a "yxf" entry`)

// InvalidSheetNameError reports a sheet name outside survey, choices and settings.
type InvalidSheetNameError struct {
	Name   string
	Source string
	Line   int
}

func (e *InvalidSheetNameError) Error() string {
	return fmt.Sprintf("%s:%d: Invalid sheet name (must be survey, choices, or settings): %s", e.Source, e.Line, e.Name)
}

// CommentColumnPositionError reports a "#" header that is not the first column.
type CommentColumnPositionError struct {
	Sheet SheetName
}

func (e *CommentColumnPositionError) Error() string {
	return fmt.Sprintf("The comment column must come first in sheet %s.", e.Sheet)
}

// MissingHeaderError reports a non-empty cell in a column without a header.
type MissingHeaderError struct {
	Column int // 1-based
	Value  string
}

func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("Cell with no column header (column %d): %s", e.Column, e.Value)
}

// InvalidKeyError reports a row key that is missing from the sheet's headers.
type InvalidKeyError struct {
	Key   string
	Row   string
	Sheet SheetName
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("Invalid key %q in row %q. Add it to yxf.headers.%s in the YAML file.", e.Key, e.Row, e.Sheet)
}

// NoSheetNameError reports a markdown table that appears before any sheet name.
type NoSheetNameError struct {
	Source string
	Line   int
}

func (e *NoSheetNameError) Error() string {
	return fmt.Sprintf("%s:%d: No sheet name specified for table.", e.Source, e.Line)
}

// ParseError wraps a failure of an underlying document parser.
type ParseError struct {
	Format string // "yaml", "markdown", "xlsx"
	Source string
	Line   int // 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s parse error: %v", e.Source, e.Line, e.Format, e.Err)
	}
	return fmt.Sprintf("%s: %s parse error: %v", e.Source, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(format, source string, line int, err error) *ParseError {
	return &ParseError{
		Format: format,
		Source: source,
		Line:   line,
		Err:    err,
	}
}
