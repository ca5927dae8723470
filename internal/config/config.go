// Package config loads the optional ~/.tomldoc.yaml holding the tomldoc
// CLI's settings. Of these, the commands read only backup_on; color and
// output are loaded but no command consults them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the CLI's user-configurable defaults.
type Config struct {
	Color    string `mapstructure:"color"`     // "auto", "always", "never"
	Output   string `mapstructure:"output"`    // "toml" or "json"; `tomldoc get` does not read it
	BackupOn bool   `mapstructure:"backup_on"` // whether `set --write` leaves a .bak-<uuid> sibling
}

// Load reads ~/.tomldoc.yaml if present, falling back to defaults when it
// doesn't exist.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("color", "auto")
	v.SetDefault("output", "toml")
	v.SetDefault("backup_on", true)

	v.SetConfigName(".tomldoc")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvPrefix("TOMLDOC")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// BackupPath returns the sibling backup path `set --write` creates before
// overwriting path, named with suffix (a uuid) so concurrent invocations
// never collide.
func BackupPath(path, suffix string) string {
	dir, file := filepath.Split(path)
	return filepath.Join(dir, fmt.Sprintf(".%s.bak-%s", file, suffix))
}
