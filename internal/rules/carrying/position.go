package carrying

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/donaldgifford/carrylint/internal/syntax"
)

var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "", "\u2028", "", "\u2029", "")

func lineOf(n *syntax.Node, edge syntax.Edge) int {
	return n.Line(edge)
}

// singleLineText renders nodes joined by ", " with every line break removed.
func singleLineText(nodes []*syntax.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.Text
	}
	return lineBreaks.Replace(strings.Join(parts, ", "))
}

// measure returns the width of s in unit.
func measure(s string, unit WidthUnit) int {
	if unit == UnitCells {
		return runewidth.StringWidth(s)
	}
	return uniseg.GraphemeClusterCount(s)
}

// singleLineWidth is the width the properties would take if written on one
// line, regardless of their current layout.
func (e *Engine) singleLineWidth(props []*syntax.Node) int {
	return measure(singleLineText(props), e.opts.WidthUnit)
}

// objectSingleLineWidth is the width of the whole object, braces included,
// if written on one line.
func (e *Engine) objectSingleLineWidth(props []*syntax.Node) int {
	return measure("{ "+singleLineText(props)+" }", e.opts.WidthUnit)
}

// textWidth is the width of a node's text with its line breaks removed.
func (e *Engine) textWidth(n *syntax.Node) int {
	return measure(lineBreaks.Replace(n.Text), e.opts.WidthUnit)
}
