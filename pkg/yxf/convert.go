package yxf

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/yxf-go/pkg/yxf/excel"
	"github.com/ukaji3/yxf-go/pkg/yxf/markdown"
	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"github.com/ukaji3/yxf-go/pkg/yxf/yamldoc"
)

// Result describes a completed conversion.
type Result struct {
	Input        string
	Output       string
	InputFormat  Format
	OutputFormat Format
}

// Decode parses content in the given format. source names the content in
// error messages and warnings.
func Decode(content []byte, source string, format Format) (*models.Form, error) {
	switch format {
	case FormatExcel:
		return excel.Read(bytes.NewReader(content))
	case FormatYAML:
		return yamldoc.Read(content, source)
	case FormatMarkdown:
		return markdown.Read(content, source)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedExtension, source)
}

// Encode renders form in the given format. source names the form in
// warnings.
func Encode(form *models.Form, format Format, source string, opts Options) ([]byte, error) {
	switch format {
	case FormatExcel:
		var buf bytes.Buffer
		w := &excel.Writer{Beautifier: opts.Beautifier}
		if err := w.Write(form, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yamldoc.Write(form)
	case FormatMarkdown:
		return markdown.Writer{Source: source, Logger: opts.logger()}.Write(form)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnrecognizedExtension, source)
}

// ConvertBytes converts content from one format to another in memory. The
// provenance comment names source, as Convert does with the input file name.
func ConvertBytes(content []byte, source string, from, to Format, opts Options) ([]byte, error) {
	form, err := Decode(content, source, from)
	if err != nil {
		return nil, err
	}
	if err := addComment(form, source, from, to); err != nil {
		return nil, err
	}
	return Encode(form, to, source, opts)
}

// ReadForm reads a form from path in the format given by its extension.
func ReadForm(path string) (*models.Form, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return Decode(content, filepath.Base(path), format)
}

// WriteForm writes form to path in the given format. The output is rendered
// in memory first, so a failed write leaves no file behind.
func WriteForm(form *models.Form, path string, format Format, opts Options) error {
	return writeForm(form, path, format, filepath.Base(path), opts)
}

func writeForm(form *models.Form, path string, format Format, source string, opts Options) error {
	if err := checkOutput(path, opts.Force); err != nil {
		return err
	}
	content, err := Encode(form, format, source, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}

// Convert converts the form at input to the target format chosen by opts and
// writes it to OutputPath(input, opts). Conversions to or from a text format
// record their source in a provenance comment on the first survey row.
func Convert(input string, opts Options) (*Result, error) {
	log := opts.logger()

	in, err := FormatFromPath(input)
	if err != nil {
		return nil, err
	}
	output, err := OutputPath(input, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Input:        input,
		Output:       output,
		InputFormat:  in,
		OutputFormat: TargetFormat(in, opts),
	}
	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, input)
	}
	if err := checkOutput(output, opts.Force); err != nil {
		return nil, err
	}

	log.Info("converting", "input", input, "output", output, "from", res.InputFormat, "to", res.OutputFormat)
	form, err := ReadForm(input)
	if err != nil {
		return nil, NewConversionError(input, "read", err)
	}

	label := filepath.Base(input)
	if err := addComment(form, label, res.InputFormat, res.OutputFormat); err != nil {
		return nil, NewConversionError(input, "read", err)
	}

	if err := writeForm(form, output, res.OutputFormat, label, opts); err != nil {
		return nil, NewConversionError(output, "write", err)
	}
	log.Debug("converted", "output", output)
	return res, nil
}

func addComment(form *models.Form, label string, from, to Format) error {
	format := commentFormat(from, to)
	if format == "" {
		return nil
	}
	return models.EnsureComment(form, label, format)
}

func checkOutput(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return nil
}
