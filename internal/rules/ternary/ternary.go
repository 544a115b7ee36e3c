// Package ternary implements the no-multiline-ternary rule.
package ternary

import (
	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// Name is the rule identifier and config key.
const Name = "no-multiline-ternary"

// Message is reported for every conditional expression spanning lines.
const Message = "Ternary operators must be written in one line"

// Rule reports conditional expressions that span more than one line.
type Rule struct{}

// Name returns the config key for this rule.
func (r *Rule) Name() string {
	return Name
}

// Description returns a one-line summary of the rule.
func (r *Rule) Description() string {
	return "conditional expressions must be written on one line"
}

// Severity returns the configured severity.
func (r *Rule) Severity(cfg *config.Config) lint.Severity {
	return lint.ParseSeverity(cfg.Rules.NoMultilineTernary.Severity)
}

// Handlers registers the check for conditional expressions.
func (r *Rule) Handlers(cfg *config.Config) map[syntax.Kind]lint.Handler {
	if !cfg.Rules.NoMultilineTernary.Enabled {
		return nil
	}
	return map[syntax.Kind]lint.Handler{
		syntax.KindConditional: check,
	}
}

func check(ctx *lint.Context, n *syntax.Node) {
	if n.IsMultiline() {
		ctx.Report(n, Message)
	}
}
