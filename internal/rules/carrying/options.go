// Package carrying implements the object-properties-carrying rule: object
// literal properties must either share one short line or sit one per line.
package carrying

import (
	"github.com/donaldgifford/carrylint/internal/config"
)

// Mode selects how many violations a single object may produce.
type Mode string

const (
	// ModeFirstMatch reports at most one violation per object, checking the
	// rules in priority order.
	ModeFirstMatch Mode = "first-match"
	// ModeAccumulate reports every failing single-line budget for an object
	// that sits on one line.
	ModeAccumulate Mode = "accumulate"
)

// Scope selects which object literals are evaluated.
type Scope string

const (
	// ScopeAssigned evaluates objects whose nearest assignment or variable
	// declarator is closer than their nearest call expression.
	ScopeAssigned Scope = "assigned"
	// ScopeAll evaluates every object literal.
	ScopeAll Scope = "all"
)

// WidthUnit selects how rendered text is measured.
type WidthUnit string

const (
	// UnitChars counts user-perceived characters (grapheme clusters).
	UnitChars WidthUnit = "chars"
	// UnitCells counts terminal cells, so wide East Asian characters count twice.
	UnitCells WidthUnit = "cells"
)

// Thresholds are the numeric budgets of the rule.
type Thresholds struct {
	MaxContentWidth            int
	MaxSingleLineProperties    int
	MaxFunctionInvocationWidth int
	MaxCallExpressionsPerLine  int
	MaxNestedObjectProperties  int
	MaxNestedArrayElements     int
}

// Options configure an Engine. They are read-only once the Engine is built.
type Options struct {
	Thresholds
	Mode      Mode
	Scope     Scope
	WidthUnit WidthUnit
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return OptionsFromConfig(&config.DefaultConfig().Rules.ObjectPropertiesCarrying)
}

// OptionsFromConfig builds engine options from the rule's config section.
func OptionsFromConfig(cfg *config.CarryingConfig) Options {
	return Options{
		Thresholds: Thresholds{
			MaxContentWidth:            cfg.MaxContentWidth,
			MaxSingleLineProperties:    cfg.MaxSingleLineProperties,
			MaxFunctionInvocationWidth: cfg.MaxFunctionInvocationWidth,
			MaxCallExpressionsPerLine:  cfg.MaxCallExpressionsPerLine,
			MaxNestedObjectProperties:  cfg.MaxNestedObjectProperties,
			MaxNestedArrayElements:     cfg.MaxNestedArrayElements,
		},
		Mode:      Mode(cfg.Mode),
		Scope:     Scope(cfg.Scope),
		WidthUnit: WidthUnit(cfg.WidthUnit),
	}
}
