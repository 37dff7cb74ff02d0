package yxf

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnrecognizedExtension indicates a path whose extension is not .xlsx,
// .yaml or .md.
var ErrUnrecognizedExtension = errors.New("unrecognized file extension")

// ErrOutputExists indicates the output file exists and overwriting was not
// allowed.
var ErrOutputExists = errors.New("file already exists (use --force to override)")

// ConversionError records the file and step at which a conversion failed.
type ConversionError struct {
	Path string
	Op   string // "read", "write"
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(path, op string, err error) *ConversionError {
	return &ConversionError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
