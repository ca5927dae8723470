package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oarkflow/tomldoc/internal/logging"
	"github.com/oarkflow/tomldoc/tomldoc"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <name>",
	Short: "Print the value bound to a dotted name",
	Long: `Prints the value at name (dot-separated, e.g. "owner.name"). A scalar
is printed bare; a table or array of tables is printed as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		defer logger.Sync()

		path, name := args[0], args[1]
		f, err := tomldoc.Load(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		logger.Debug("loaded document", loggerField("path", path))

		segs := splitPath(name)
		if v, err := f.Get(segs...); err == nil {
			fmt.Println(scalarString(v))
			return nil
		}

		m, err := f.Primitive()
		if err != nil {
			return fmt.Errorf("projecting document: %w", err)
		}
		val, ok := navigatePrimitive(m, segs)
		if !ok {
			return fmt.Errorf("%s: no such key or table", name)
		}
		enc, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		fmt.Println(string(enc))
		return nil
	},
}
