package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func newDetectCmd() *cobra.Command {
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Guess the dialect of a delimited file",
		Long: `Inspect a sample of the input and report the most plausible separator,
line ending and header presence. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			if len(data) > sampleSize {
				data = data[:sampleSize]
			}
			d := dsv.Sniff(string(data))

			fmt.Printf("separator: %s\n", printableRune(d.Separator))
			fmt.Printf("line-end:  %s\n", printableLineEnd(d.LineEnd))
			fmt.Printf("header:    %v\n", d.HasHeader)
			return nil
		},
	}

	cmd.Flags().IntVar(&sampleSize, "sample-bytes", 64*1024, "How much of the input to inspect")

	return cmd
}

func printableRune(r rune) string {
	switch r {
	case '\t':
		return "tab"
	default:
		return string(r)
	}
}

func printableLineEnd(s string) string {
	switch s {
	case "\r\n":
		return "crlf"
	case "\r":
		return "cr"
	default:
		return "lf"
	}
}
