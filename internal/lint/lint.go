package lint

import (
	"github.com/donaldgifford/carrylint/internal/config"
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// Context is passed to handlers. It anchors reports to the file and rule
// currently being evaluated.
type Context struct {
	file     string
	rule     string
	severity Severity
	diags    *[]Diagnostic
}

// Report attaches message as a diagnostic at n's source span.
func (c *Context) Report(n *syntax.Node, message string) {
	*c.diags = append(*c.diags, Diagnostic{
		File:      c.file,
		Line:      n.StartLine,
		Column:    n.StartColumn,
		EndLine:   n.EndLine,
		EndColumn: n.EndColumn,
		Rule:      c.rule,
		Severity:  c.severity,
		Message:   message,
	})
}

// Run walks the tree once, calling every enabled rule's handlers for the
// nodes they registered for, and returns the diagnostics sorted by
// position.
func Run(file string, root *syntax.Node, cfg *config.Config, rules []Rule) []Diagnostic {
	var diags []Diagnostic
	table := make(syntax.Table)

	for _, rule := range rules {
		handlers := rule.Handlers(cfg)
		if handlers == nil {
			continue
		}
		ctx := &Context{
			file:     file,
			rule:     rule.Name(),
			severity: rule.Severity(cfg),
			diags:    &diags,
		}
		for kind, h := range handlers {
			table.Add(kind, func(n *syntax.Node) {
				h(ctx, n)
			})
		}
	}

	syntax.Walk(root, table)
	SortDiagnostics(diags)
	return diags
}
