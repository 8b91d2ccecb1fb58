// Package config provides the CLI's own settings using Viper.
//
// These settings control how the dotconf tool itself behaves (which backing
// store it binds, how it logs); they are separate from the configuration
// documents the engine manages.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/dotconf/internal/errors"
	"github.com/thoreinstein/dotconf/internal/paths"
)

// Settings represents the top-level CLI settings structure.
type Settings struct {
	// Store overrides the default backing-store locator. Empty means the
	// XDG default from internal/paths.
	Store string `mapstructure:"store" yaml:"store"`

	// LogFormat selects "text" or "json" log output.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Init initializes Viper with default settings.
// Call this once at application startup before accessing settings values.
func Init() {
	viper.SetConfigName("settings")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))

	// Environment variable support: DOTCONF_STORE, DOTCONF_LOG_FORMAT
	viper.SetEnvPrefix("DOTCONF")
	viper.AutomaticEnv()

	viper.SetDefault("store", "")
	viper.SetDefault("log_format", "text")
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded settings, or defaults if no file is found (when path is empty).
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A missing file is only an error when the user named one.
			if path != "" {
				return nil, errors.Wrapf(err, "settings file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	return &s, nil
}
