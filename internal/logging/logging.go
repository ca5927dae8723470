// Package logging sets up the structured logger used by cmd/tomldoc. The
// core packages (lexer, element, parser, tomldoc) stay pure and return
// errors instead of logging; only the CLI layer logs.
package logging

import "go.uber.org/zap"

// New returns a zap logger (development config when verbose, production
// config otherwise), falling back to a no-op logger if
// construction fails (e.g. stdout/stderr unavailable) rather than aborting
// command execution over a logging concern.
func New(verbose bool) *zap.Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
