package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oarkflow/tomldoc/tomldoc"
)

// fmtCmd re-serializes a document unchanged: a pass-through round trip with
// no prettify rules applied, useful mainly to confirm a file parses and to
// normalize its line endings via the lexer's newline normalization.
var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Re-serialize a document, verifying it parses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := tomldoc.Load(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		fmt.Print(string(f.Dump()))
		return nil
	},
}
