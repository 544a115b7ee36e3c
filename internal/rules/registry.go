// Package rules manages registration of lint rules.
package rules

import (
	"github.com/donaldgifford/carrylint/internal/lint"
)

var lintRules []lint.Rule

// Register adds a lint rule to the registry. Rules run in registration
// order during the single traversal of each file.
func Register(r lint.Rule) {
	lintRules = append(lintRules, r)
}

// Rules returns all registered rules in execution order.
func Rules() []lint.Rule {
	return lintRules
}

// Lookup returns the registered rule with the given name.
func Lookup(name string) (lint.Rule, bool) {
	for _, r := range lintRules {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}
