package carrying

import (
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// complexKinds are value kinds too heavy for a single-line object whatever
// their size.
var complexKinds = map[syntax.Kind]bool{
	syntax.KindArrowFunction: true,
	syntax.KindFunction:      true,
	syntax.KindNew:           true,
	syntax.KindJSX:           true,
	syntax.KindConditional:   true,
	syntax.KindBinary:        true,
	syntax.KindMember:        true,
}

// isComplex reports whether a property value is too heavy for a
// single-line object. A nil value (shorthand, spread) is simple.
func (e *Engine) isComplex(value *syntax.Node) bool {
	if value == nil {
		return false
	}

	switch value.Kind {
	case syntax.KindObject:
		return len(value.Properties()) > e.opts.MaxNestedObjectProperties
	case syntax.KindArray:
		return len(value.Elements()) > e.opts.MaxNestedArrayElements
	}

	return complexKinds[value.Kind]
}

// callExpressionBudgetExceeded reports whether the properties hold more
// call-expression values than allowed, or any call that is too long.
func (e *Engine) callExpressionBudgetExceeded(props []*syntax.Node) bool {
	calls := valuesOfKind(props, syntax.KindCall)
	if len(calls) > e.opts.MaxCallExpressionsPerLine {
		return true
	}

	for _, call := range calls {
		if e.textWidth(call) > e.opts.MaxFunctionInvocationWidth {
			return true
		}
	}
	return false
}

// hasComplexValues combines the call budget with the per-value check.
func (e *Engine) hasComplexValues(props []*syntax.Node) bool {
	if e.callExpressionBudgetExceeded(props) {
		return true
	}

	for _, p := range props {
		if e.isComplex(p.Value()) {
			return true
		}
	}
	return false
}

// valuesOfKind returns the non-nil property values whose kind is one of kinds.
func valuesOfKind(props []*syntax.Node, kinds ...syntax.Kind) []*syntax.Node {
	var out []*syntax.Node
	for _, p := range props {
		v := p.Value()
		if v == nil {
			continue
		}
		for _, k := range kinds {
			if v.Kind == k {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
