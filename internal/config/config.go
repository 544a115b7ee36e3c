// Package config defines the configuration types and defaults for carrylint.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Rules   RulesConfig   `yaml:"rules"`
	Exclude []string      `yaml:"exclude"`
	Logging LoggingConfig `yaml:"logging"`
}

// RulesConfig holds per-rule settings, keyed by rule name.
type RulesConfig struct {
	ObjectPropertiesCarrying CarryingConfig `yaml:"object-properties-carrying"`
	NoMultilineTernary       TernaryConfig  `yaml:"no-multiline-ternary"`
}

// CarryingConfig holds the object-properties-carrying settings.
type CarryingConfig struct {
	Enabled                    bool   `yaml:"enabled"`
	Severity                   string `yaml:"severity"`
	Mode                       string `yaml:"mode"`
	Scope                      string `yaml:"scope"`
	WidthUnit                  string `yaml:"width_unit"`
	MaxSingleLineProperties    int    `yaml:"max_single_line_properties"`
	MaxContentWidth            int    `yaml:"max_content_width"`
	MaxFunctionInvocationWidth int    `yaml:"max_function_invocation_width"`
	MaxCallExpressionsPerLine  int    `yaml:"max_call_expressions_per_line"`
	MaxNestedObjectProperties  int    `yaml:"max_nested_object_properties"`
	MaxNestedArrayElements     int    `yaml:"max_nested_array_elements"`
}

// TernaryConfig holds the no-multiline-ternary settings.
type TernaryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Severity string `yaml:"severity"`
}

// LoggingConfig controls the diagnostic log written to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error.
	Format string `yaml:"format"` // text, json.
}

var (
	severities = []string{"error", "warning"}
	modes      = []string{"first-match", "accumulate"}
	scopes     = []string{"assigned", "all"}
	widthUnits = []string{"chars", "cells"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			ObjectPropertiesCarrying: CarryingConfig{
				Enabled:                    true,
				Severity:                   "error",
				Mode:                       "first-match",
				Scope:                      "assigned",
				WidthUnit:                  "chars",
				MaxSingleLineProperties:    3,
				MaxContentWidth:            70,
				MaxFunctionInvocationWidth: 30,
				MaxCallExpressionsPerLine:  1,
				MaxNestedObjectProperties:  0,
				MaxNestedArrayElements:     1,
			},
			NoMultilineTernary: TernaryConfig{
				Enabled:  true,
				Severity: "error",
			},
		},
		Exclude: []string{"**/node_modules/**"},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	op := c.Rules.ObjectPropertiesCarrying
	if err := oneOf("object-properties-carrying.severity", op.Severity, severities); err != nil {
		return err
	}
	if err := oneOf("object-properties-carrying.mode", op.Mode, modes); err != nil {
		return err
	}
	if err := oneOf("object-properties-carrying.scope", op.Scope, scopes); err != nil {
		return err
	}
	if err := oneOf("object-properties-carrying.width_unit", op.WidthUnit, widthUnits); err != nil {
		return err
	}

	positive := []struct {
		name string
		val  int
	}{
		{"max_single_line_properties", op.MaxSingleLineProperties},
		{"max_content_width", op.MaxContentWidth},
		{"max_function_invocation_width", op.MaxFunctionInvocationWidth},
	}
	for _, p := range positive {
		if p.val < 1 {
			return fmt.Errorf("%w: object-properties-carrying.%s must be at least 1, got %d", ErrInvalid, p.name, p.val)
		}
	}

	nonNegative := []struct {
		name string
		val  int
	}{
		{"max_call_expressions_per_line", op.MaxCallExpressionsPerLine},
		{"max_nested_object_properties", op.MaxNestedObjectProperties},
		{"max_nested_array_elements", op.MaxNestedArrayElements},
	}
	for _, p := range nonNegative {
		if p.val < 0 {
			return fmt.Errorf("%w: object-properties-carrying.%s must not be negative, got %d", ErrInvalid, p.name, p.val)
		}
	}

	if err := oneOf("no-multiline-ternary.severity", c.Rules.NoMultilineTernary.Severity, severities); err != nil {
		return err
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: malformed exclude pattern %q", ErrInvalid, pattern)
		}
	}

	if err := oneOf("logging.level", c.Logging.Level, logLevels); err != nil {
		return err
	}
	return oneOf("logging.format", c.Logging.Format, logFormats)
}

func oneOf(name, val string, allowed []string) error {
	if slices.Contains(allowed, val) {
		return nil
	}
	return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalid, name, allowed, val)
}
