package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/cssline/format"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool
	var indent string

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty-print a stylesheet, normalizing indentation",
		Long: `Pretty-print a stylesheet to stdout, one statement per line.

If no file is provided, reads from stdin. Comments are removed and missing
semicolons before closing braces are restored.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			var filename string

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			output, err := format.Format(source, indent)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = os.Stdout.Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")
	cmd.Flags().StringVar(&indent, "indent", "\t", "indent unit per nesting level")

	return cmd
}
