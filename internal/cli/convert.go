package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

// convertFlags holds the input and output dialect flags. Input flags map
// onto dsv.ParseOptions, output flags onto dsv.WriteOptions.
type convertFlags struct {
	quote           string
	separators      string
	looseLineBreaks bool
	requireTrailing bool
	trimPadding     bool
	taintedRows     bool

	outQuote        string
	outSeparator    string
	lineEnd         string
	noTrim          bool
	trailingLineEnd bool

	output string
	outDir string
}

func newConvertCmd() *cobra.Command {
	var flags convertFlags

	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Re-write delimited text in another dialect",
		Long: `Parse each input with the input dialect and write it back with the
output dialect. With no files, reads stdin and writes stdout. With several
files, --out-dir is required and each output keeps its file name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.quote, "quote", `"`, "Input quote character (empty disables quoting)")
	cmd.Flags().StringVar(&flags.separators, "separators", ",", "Input separator characters, each one a separator")
	cmd.Flags().BoolVar(&flags.looseLineBreaks, "loose-linebreaks", false, "Also treat \\n\\r as a single line break")
	cmd.Flags().BoolVar(&flags.requireTrailing, "require-trailing-lf", false, "Treat the trailing line feed as document content")
	cmd.Flags().BoolVar(&flags.trimPadding, "trim-quote-padding", false, "Drop spaces that follow a closing quote")
	cmd.Flags().BoolVar(&flags.taintedRows, "emulate-tainted-rows", false, "Reproduce the legacy quote-as-separator row defect")

	cmd.Flags().StringVar(&flags.outQuote, "out-quote", `"`, "Output quote character (empty disables quoting)")
	cmd.Flags().StringVar(&flags.outSeparator, "out-separator", ",", "Output separator character")
	cmd.Flags().StringVar(&flags.lineEnd, "line-end", "lf", "Output line ending: lf, crlf or cr")
	cmd.Flags().BoolVar(&flags.noTrim, "no-trim", false, "Keep wholly-empty trailing rows and columns")
	cmd.Flags().BoolVar(&flags.trailingLineEnd, "trailing-line-end", false, "End the output with a line ending")

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (single input only; default stdout)")
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "Output directory (required for multiple inputs)")

	return cmd
}

// parseOptions maps the input flags onto the library options. Unusable
// characters are left to the library's own sanitation.
func (f convertFlags) parseOptions() dsv.ParseOptions {
	opts := dsv.DefaultParseOptions()
	opts.Quote = firstRune(f.quote)
	opts.Separators = []rune(f.separators)
	if f.looseLineBreaks {
		opts.LineBreaks = dsv.LineBreaksLoose
	}
	opts.RequireTrailingLineFeed = f.requireTrailing
	opts.TrimQuotePadding = f.trimPadding
	opts.EmulateTaintedRows = f.taintedRows
	return opts
}

func (f convertFlags) writeOptions() dsv.WriteOptions {
	opts := dsv.DefaultWriteOptions()
	opts.Quote = firstRune(f.outQuote)
	opts.Separator = firstRune(f.outSeparator)
	switch f.lineEnd {
	case "crlf":
		opts.LineEnd = "\r\n"
	case "cr":
		opts.LineEnd = "\r"
	default:
		opts.LineEnd = "\n"
	}
	opts.TrimEmpty = !f.noTrim
	opts.TrailingLineEnd = f.trailingLineEnd
	return opts
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func runConvert(flags convertFlags, args []string) error {
	parseOpts := flags.parseOptions()
	writeOpts := flags.writeOptions()

	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return convertTo(flags.output, data, parseOpts, writeOpts)
	}

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		return convertTo(flags.output, data, parseOpts, writeOpts)
	}

	if flags.outDir == "" {
		return fmt.Errorf("--out-dir is required with multiple inputs")
	}
	if err := os.MkdirAll(flags.outDir, 0o755); err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
	)

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out := filepath.Join(flags.outDir, filepath.Base(path))
		if err := convertTo(out, data, parseOpts, writeOpts); err != nil {
			return err
		}
		logger.Debug().Str("file", path).Str("output", out).Msg("converted")
		_ = bar.Add(1)
	}
	return nil
}

// convertTo parses data, re-writes it in the output dialect, and writes the
// result to path (stdout when path is empty).
func convertTo(path string, data []byte, parseOpts dsv.ParseOptions, writeOpts dsv.WriteOptions) error {
	table := dsv.ParseWithOptions(string(data), parseOpts)
	logger.Debug().
		Int("columns", len(table.Header)).
		Int("rows", table.Len()).
		Msg("parsed")

	out, err := dsv.StringifyWithOptions(table, writeOpts)
	if err != nil {
		return err
	}

	if path == "" {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(path, []byte(out), 0o644)
}
