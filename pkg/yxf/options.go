// Package yxf converts XLSForm forms between Excel workbooks, YAML and
// Markdown.
package yxf

import (
	"io"
	"log/slog"

	"github.com/ukaji3/yxf-go/pkg/yxf/excel"
)

// Options configures conversion behavior.
type Options struct {
	// Markdown converts workbooks to Markdown instead of YAML.
	Markdown bool
	// Output is the output path. If empty, it is derived from the input path.
	Output string
	// Force allows overwriting an existing output file.
	Force bool
	// Logger receives progress and warnings. If nil, logs are discarded.
	Logger *slog.Logger
	// Beautifier styles written workbooks. If nil, workbooks are unstyled.
	Beautifier excel.Beautifier
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Beautifier: excel.DefaultTheme(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
