package carrying

import (
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// IsSingleLine reports whether every adjacent pair of properties shares a
// line: each property ends on the line the next one starts. A lone
// property is trivially single-line.
func IsSingleLine(props []*syntax.Node) bool {
	if len(props) == 0 {
		return false
	}
	for i := 0; i < len(props)-1; i++ {
		if lineOf(props[i], syntax.End) != lineOf(props[i+1], syntax.Start) {
			return false
		}
	}
	return true
}

// IsMultiLine reports whether no adjacent pair of properties shares a line.
// A lone property is trivially multi-line.
func IsMultiLine(props []*syntax.Node) bool {
	if len(props) == 0 {
		return false
	}
	for i := 0; i < len(props)-1; i++ {
		if lineOf(props[i], syntax.End) == lineOf(props[i+1], syntax.Start) {
			return false
		}
	}
	return true
}

// HasSingleMultilineProperty reports whether the object has exactly one
// property and that property spans several lines.
func HasSingleMultilineProperty(props []*syntax.Node) bool {
	if len(props) != 1 {
		return false
	}
	return lineOf(props[0], syntax.Start) != lineOf(props[0], syntax.End)
}
