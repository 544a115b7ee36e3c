package carrying

import (
	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/lint"
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// Name is the rule identifier and config key.
const Name = "object-properties-carrying"

// Rule reports object literals whose properties are laid out badly.
type Rule struct{}

// Name returns the config key for this rule.
func (r *Rule) Name() string {
	return Name
}

// Description returns a one-line summary of the rule.
func (r *Rule) Description() string {
	return "object literal properties must share one short line or sit one per line"
}

// Severity returns the configured severity.
func (r *Rule) Severity(cfg *config.Config) lint.Severity {
	return lint.ParseSeverity(cfg.Rules.ObjectPropertiesCarrying.Severity)
}

// Handlers registers the engine for object literals.
func (r *Rule) Handlers(cfg *config.Config) map[syntax.Kind]lint.Handler {
	c := &cfg.Rules.ObjectPropertiesCarrying
	if !c.Enabled {
		return nil
	}

	engine := NewEngine(OptionsFromConfig(c))
	return map[syntax.Kind]lint.Handler{
		syntax.KindObject: func(ctx *lint.Context, n *syntax.Node) {
			for _, v := range engine.Evaluate(n) {
				ctx.Report(v.Node, v.Message)
			}
		},
	}
}
