// Package main provides the CLI entry point for yxf.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/yxf-go/pkg/yxf"
)

func main() {
	cmd := newRootCmd(viper.New())
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yxf [flags] FILE",
		Short: "Convert from XLSForm to YAML and back",
		Long: `yxf converts XLSForm workbooks (.xlsx) to YAML (.yaml) or Markdown (.md)
and converts those documents back to workbooks.

Flags can also be set with YXF_ environment variables, e.g. YXF_FORCE=true.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0])
		},
	}

	cmd.Flags().Bool("markdown", false, "use Markdown instead of YAML")
	cmd.Flags().StringP("output", "o", "", "output file name (default: same as input, with extension changed)")
	cmd.Flags().BoolP("force", "f", false, "allow overwriting existing output files")
	cmd.Flags().BoolP("verbose", "v", false, "log conversion details")

	v.SetEnvPrefix("yxf")
	v.AutomaticEnv()
	cobra.CheckErr(v.BindPFlags(cmd.Flags()))
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, input string) error {
	opts := yxf.DefaultOptions()
	opts.Markdown = v.GetBool("markdown")
	opts.Output = v.GetString("output")
	opts.Force = v.GetBool("force")
	opts.Logger = newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	res, err := yxf.Convert(input, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
		successStyle.Render("converted"),
		pathStyle.Render(res.Input),
		mutedStyle.Render("->"),
		pathStyle.Render(res.Output),
		mutedStyle.Render(fmt.Sprintf("(%s)", res.OutputFormat.DisplayName())),
	)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
