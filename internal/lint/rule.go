// Package lint provides the rule interface, the lint pass that dispatches
// syntax nodes to rules, and diagnostic reporting.
package lint

import (
	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// Handler inspects a single node and reports violations through ctx.
type Handler func(ctx *Context, n *syntax.Node)

// Rule inspects syntax nodes of the kinds it registers handlers for.
type Rule interface {
	// Name returns the rule identifier and config key
	// (e.g., "object-properties-carrying").
	Name() string

	// Description returns a one-line summary of what the rule enforces.
	Description() string

	// Severity returns the configured severity of the rule's diagnostics.
	Severity(cfg *config.Config) Severity

	// Handlers returns the node kinds the rule inspects, keyed to the
	// handler called for each node of that kind. It returns nil when the
	// rule is disabled in cfg. Handlers must not mutate nodes.
	Handlers(cfg *config.Config) map[syntax.Kind]Handler
}
