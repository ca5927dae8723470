package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oarkflow/tomldoc/internal/diff"
	"github.com/oarkflow/tomldoc/tomldoc"
)

var (
	diffSets []string
	diffRms  []string
)

func init() {
	diffCmd.Flags().StringArrayVar(&diffSets, "set", nil, `a "name=value" assignment to apply before diffing; may be repeated`)
	diffCmd.Flags().StringArrayVar(&diffRms, "rm", nil, "a dotted name to remove before diffing; may be repeated")
}

// diffCmd shows what a set of pending edits would change in a document
// without writing anything back.
var diffCmd = &cobra.Command{
	Use:   "diff <file>",
	Short: "Preview the effect of --set/--rm edits without writing them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		original, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		f, err := tomldoc.Loads(original)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		for _, assignment := range diffSets {
			name, raw, ok := strings.Cut(assignment, "=")
			if !ok {
				return fmt.Errorf("--set %q: expected name=value", assignment)
			}
			if err := f.Set(splitPath(name), parseValue(raw, false)); err != nil {
				return fmt.Errorf("--set %s: %w", name, err)
			}
		}
		for _, name := range diffRms {
			if err := f.Delete(splitPath(name)); err != nil {
				return fmt.Errorf("--rm %s: %w", name, err)
			}
		}

		result := diff.Compute(original, f.Dump())
		fmt.Print(result.String())
		return nil
	},
}
