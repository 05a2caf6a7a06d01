package main

import (
	"github.com/dhamidi/cssline/stylesheet"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := stylesheet.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}
}
