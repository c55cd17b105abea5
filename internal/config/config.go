// Package config provides configuration management for handlesort using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/handlesort/internal/paths"
	"github.com/thoreinstein/handlesort/internal/scan"
)

// AppName is the application name used for config file naming.
const AppName = "handlesort"

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// MinCount is the minimum number of files required before a handle gets
	// its own folder.
	MinCount int `mapstructure:"min_count" yaml:"min_count"`

	// IncludeSingletons organizes groups below MinCount as well.
	IncludeSingletons bool `mapstructure:"include_singletons" yaml:"include_singletons"`

	// Extensions is the allowed file extension list for scanning.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// StrictStart restricts inference to handles at the start of the name.
	StrictStart bool `mapstructure:"strict_start" yaml:"strict_start"`

	// AllowTrailing enables the trailing-token fallback.
	AllowTrailing bool `mapstructure:"allow_trailing" yaml:"allow_trailing"`

	// RulesFile optionally points at a TOML file overriding the heuristic
	// rule tables.
	RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("HANDLESORT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("min_count", 3)
	viper.SetDefault("include_singletons", false)
	viper.SetDefault("extensions", scan.DefaultExtensions)
	viper.SetDefault("strict_start", false)
	viper.SetDefault("allow_trailing", true)
}

// Default returns a configuration populated with the built-in defaults,
// without consulting any config file.
func Default() *Config {
	exts := make([]string, len(scan.DefaultExtensions))
	copy(exts, scan.DefaultExtensions)
	return &Config{
		Version:       1,
		MinCount:      3,
		Extensions:    exts,
		AllowTrailing: true,
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errs[0])
	}

	return &cfg, nil
}
