package yxf

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a form file format by its extension.
type Format string

const (
	// FormatExcel is an XLSForm workbook (.xlsx).
	FormatExcel Format = "xlsx"
	// FormatYAML is a YAML document (.yaml).
	FormatYAML Format = "yaml"
	// FormatMarkdown is a Markdown document (.md).
	FormatMarkdown Format = "md"
)

// DisplayName returns the name used in provenance comments.
func (f Format) DisplayName() string {
	switch f {
	case FormatExcel:
		return "Excel"
	case FormatYAML:
		return "YAML"
	case FormatMarkdown:
		return "Markdown"
	}
	return string(f)
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".xlsx":
		return FormatExcel, nil
	case ".yaml":
		return FormatYAML, nil
	case ".md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnrecognizedExtension, path)
}

// TargetFormat returns the format an input of format in is converted to.
// Workbooks become Markdown when opts.Markdown is set. Otherwise a
// recognized extension on opts.Output decides; failing that, workbooks
// become YAML and text documents become workbooks.
func TargetFormat(in Format, opts Options) Format {
	if in == FormatExcel && opts.Markdown {
		return FormatMarkdown
	}
	if opts.Output != "" {
		if out, err := FormatFromPath(opts.Output); err == nil {
			return out
		}
	}
	if in == FormatExcel {
		return FormatYAML
	}
	return FormatExcel
}

// OutputPath returns opts.Output, or input with its extension replaced by
// that of the target format.
func OutputPath(input string, opts Options) (string, error) {
	in, err := FormatFromPath(input)
	if err != nil {
		return "", err
	}
	if opts.Output != "" {
		return opts.Output, nil
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + TargetFormat(in, opts).Extension(), nil
}

// commentFormat returns the format named in the provenance comment, or ""
// when none is added. The text side of a conversion is the one to edit; for
// text to text it is the output.
func commentFormat(in, out Format) string {
	switch {
	case in == FormatExcel && out == FormatExcel:
		return ""
	case out != FormatExcel:
		return out.DisplayName()
	default:
		return in.DisplayName()
	}
}
