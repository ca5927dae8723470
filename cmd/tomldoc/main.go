// Command tomldoc is a format-preserving TOML editor: it reads a document,
// applies a single get/set/rm/fmt/diff operation, and prints the result;
// set and rm write it back to the file instead when given --write, without
// disturbing any formatting the mutation didn't touch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tomldoc",
		Short: "Format-preserving TOML document editor",
		Long: `tomldoc reads a TOML file and lets you read or edit individual
values without reformatting or reordering anything else in the file.`,
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable development-mode logging")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(diffCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var verbose bool
