package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"carrylint.yml",
	"carrylint.yaml",
	".carrylint.yml",
	".carrylint.yaml",
}

// Environment variables that override file settings.
const (
	EnvLogLevel  = "CARRYLINT_LOG_LEVEL"
	EnvLogFormat = "CARRYLINT_LOG_FORMAT"
	EnvMode      = "CARRYLINT_MODE"
)

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a carrylint config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory using Discover. If no config file is found, DefaultConfig is
// used.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values. Environment overrides are applied last and
// the result is validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}

	cfg := DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}

		// Decode over defaults so missing YAML fields keep non-zero defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		if configPath == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		cfg.Rules.ObjectPropertiesCarrying.Mode = v
	}
}
