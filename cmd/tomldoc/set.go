package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/oarkflow/tomldoc/internal/config"
	"github.com/oarkflow/tomldoc/internal/logging"
	"github.com/oarkflow/tomldoc/tomldoc"
)

var (
	setWrite       bool
	setForceString bool
	setInteractive bool
)

func init() {
	setCmd.Flags().BoolVar(&setWrite, "write", false, "write the result back to the file instead of printing it")
	setCmd.Flags().BoolVar(&setForceString, "string", false, "interpret value as a string even if it looks like a number or boolean")
	setCmd.Flags().BoolVar(&setInteractive, "interactive", false, "prompt for the value instead of taking it as an argument")
}

var setCmd = &cobra.Command{
	Use:   "set <file> <name> [value]",
	Short: "Bind a value to a dotted name, creating tables as needed",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		defer logger.Sync()

		path, name := args[0], args[1]
		raw, err := resolveSetValue(args)
		if err != nil {
			return err
		}

		f, err := tomldoc.Load(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		value := parseValue(raw, setForceString)
		if err := f.Set(splitPath(name), value); err != nil {
			return fmt.Errorf("setting %s: %w", name, err)
		}
		logger.Info("set value", loggerField("path", path), loggerField("name", name))

		out := f.Dump()
		if !setWrite {
			fmt.Print(string(out))
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := writeBack(path, out, cfg); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	},
}

func resolveSetValue(args []string) (string, error) {
	if len(args) == 3 {
		return args[2], nil
	}
	if !setInteractive {
		return "", fmt.Errorf("value required (pass it as a third argument, or use --interactive)")
	}
	var value string
	prompt := &survey.Input{Message: fmt.Sprintf("Value for %s:", args[1])}
	if err := survey.AskOne(prompt, &value, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return value, nil
}
