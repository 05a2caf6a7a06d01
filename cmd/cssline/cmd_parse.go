package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/cssline/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Classify a stylesheet into lines and dump the result",
		Long: `Classify a stylesheet into block openings, properties and block closures.

If no file is provided, reads from stdin. Comments are skipped and syntax
errors are tolerated; undelimited trailing text is reported as UNKNOWN.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				input = f
			}

			lines, err := format.ReadAll(input)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "lines":
				encoder = format.NewLineEncoder(os.Stdout)
			case "css":
				encoder = format.NewCSSEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(lines); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, lines, css)")

	return cmd
}
