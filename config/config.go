// Package config loads generator configuration using Viper.
//
// Configuration is optional: with no config file and no environment
// variables, the defaults are enough for a checkout of this repository.
// Sources in precedence order (lowest to highest): defaults, a
// classifiergen.toml found by walking up from the working directory,
// CLASSIFIERGEN_* environment variables, command-line flags (applied by the
// cmd package).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pytrove/trove-classifiers/errors"
)

// ConfigFileName is the per-project configuration file searched for by Load.
const ConfigFileName = "classifiergen.toml"

// Config holds the generator settings.
type Config struct {
	Python struct {
		// Interpreter is the Python executable used to read the installed
		// trove_classifiers distribution.
		Interpreter string `mapstructure:"interpreter"`
	} `mapstructure:"python"`

	// Snapshot, when set, reads classifier data from this JSON file instead
	// of invoking Python.
	Snapshot string `mapstructure:"snapshot"`

	// Output is the path of the generated artifact.
	Output string `mapstructure:"output"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the generator configuration.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// SetDefaults registers default values on a Viper instance. Every key gets a
// default so environment variables are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("python.interpreter", "python3")
	v.SetDefault("snapshot", "")
	v.SetDefault("output", filepath.Join("classifiers", "classifiers.go"))
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("CLASSIFIERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configPath := findProjectConfig(); configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		// A present but unreadable config file is ignored rather than fatal;
		// defaults and environment variables still apply.
		v.ReadInConfig()
	}

	viperInstance = v
	return v
}

// findProjectConfig searches for classifiergen.toml by walking up the
// directory tree. Returns empty string if none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
