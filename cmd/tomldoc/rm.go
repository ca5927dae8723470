package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oarkflow/tomldoc/internal/config"
	"github.com/oarkflow/tomldoc/internal/logging"
	"github.com/oarkflow/tomldoc/tomldoc"
)

var rmWrite bool

func init() {
	rmCmd.Flags().BoolVar(&rmWrite, "write", false, "write the result back to the file instead of printing it")
}

var rmCmd = &cobra.Command{
	Use:   "rm <file> <name>",
	Short: "Remove the key bound to a dotted name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		defer logger.Sync()

		path, name := args[0], args[1]
		f, err := tomldoc.Load(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		if err := f.Delete(splitPath(name)); err != nil {
			return fmt.Errorf("removing %s: %w", name, err)
		}
		logger.Info("removed key", loggerField("path", path), loggerField("name", name))

		out := f.Dump()
		if !rmWrite {
			fmt.Print(string(out))
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return writeBack(path, out, cfg)
	},
}
