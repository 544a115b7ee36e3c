package carrying

import (
	"github.com/donaldgifford/carrylint/internal/syntax"
)

// Engine evaluates object literals against the carrying rules. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine returns an Engine using opts.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Evaluate returns the violations of a single object literal. Nodes that
// are not objects, objects without properties and objects out of scope
// yield nil. In first-match mode at most one verdict is returned.
func (e *Engine) Evaluate(obj *syntax.Node) []Verdict {
	if obj == nil || obj.Kind != syntax.KindObject {
		return nil
	}

	props := obj.Properties()
	if len(props) == 0 || !e.inScope(obj) {
		return nil
	}

	if e.opts.Mode == ModeAccumulate {
		return e.accumulate(obj, props)
	}
	return e.firstMatch(obj, props)
}

// inScope applies the scope filter. In ScopeAssigned an object is evaluated
// only when an assignment or variable declarator is a closer ancestor than
// any call expression, so objects passed as call arguments are skipped.
func (e *Engine) inScope(obj *syntax.Node) bool {
	if e.opts.Scope == ScopeAll {
		return true
	}

	assigned := obj.ClosestAncestor(syntax.KindAssignment, syntax.KindVariableDeclarator)
	if assigned < 0 {
		return false
	}
	called := obj.ClosestAncestor(syntax.KindCall)
	return called < 0 || assigned < called
}

// firstMatch checks the rules in priority order and stops at the first
// violation.
func (e *Engine) firstMatch(obj *syntax.Node, props []*syntax.Node) []Verdict {
	single := IsSingleLine(props)
	multi := IsMultiLine(props)
	tooWide := e.singleLineWidth(props) > e.opts.MaxContentWidth
	tooMany := len(props) > e.opts.MaxSingleLineProperties
	exempt := HasSingleMultilineProperty(props)
	complexValues := e.hasComplexValues(props)

	switch {
	case single && tooWide && !exempt:
		return []Verdict{verdict(ContentWidth, obj, msgContentWidth, e.opts.MaxContentWidth)}

	case !single && !multi:
		return []Verdict{verdict(Carrying, obj, msgCarrying)}

	case single && len(props) > 1 && complexValues:
		return []Verdict{verdict(ComplexValues, obj, msgComplexValues)}

	case single && tooMany:
		return []Verdict{verdict(TooManySingleLineProperties, obj, msgTooManyProperties, e.opts.MaxSingleLineProperties)}

	case tooWide || exempt:
		// Already reported above or exempt.
		return nil

	case !single && multi && !tooMany && !complexValues:
		return []Verdict{verdict(ShouldCollapse, obj, msgCarryingMinProperties, e.opts.MaxSingleLineProperties)}
	}

	return nil
}

// accumulate runs every single-line budget. An object on one line gets a
// verdict per failing budget; an object spread over several lines gets a
// ShouldCollapse verdict only when it would pass all of them.
func (e *Engine) accumulate(obj *syntax.Node, props []*syntax.Node) []Verdict {
	var out []Verdict
	add := func(kind ViolationKind, template string, limit int) {
		out = append(out, verdict(kind, obj, template, limit))
	}

	if e.objectSingleLineWidth(props) > e.opts.MaxContentWidth {
		add(ContentWidth, msgContentWidth, e.opts.MaxContentWidth)
	}
	if len(props) > e.opts.MaxSingleLineProperties {
		add(TooManySingleLineProperties, msgTooManyProperties, e.opts.MaxSingleLineProperties)
	}

	for _, arr := range valuesOfKind(props, syntax.KindArray) {
		if len(arr.Elements()) > e.opts.MaxNestedArrayElements {
			add(NestedArrayElements, msgNestedArrayElements, e.opts.MaxNestedArrayElements)
			break
		}
	}

	funcs := valuesOfKind(props, syntax.KindArrowFunction, syntax.KindCall)
	if len(funcs) > e.opts.MaxCallExpressionsPerLine {
		add(CallExpressionCount, msgCallExpressionCount, e.opts.MaxCallExpressionsPerLine)
	}
	for _, fn := range funcs {
		if e.textWidth(fn) > e.opts.MaxFunctionInvocationWidth {
			add(FunctionWidth, msgFunctionWidth, e.opts.MaxFunctionInvocationWidth)
			break
		}
	}

	for _, nested := range valuesOfKind(props, syntax.KindObject) {
		if len(nested.Properties()) > e.opts.MaxNestedObjectProperties {
			add(NestedObjectProperties, msgNestedObjectProperties, e.opts.MaxNestedObjectProperties)
			break
		}
	}

	if obj.IsMultiline() {
		if len(out) == 0 {
			return []Verdict{verdict(ShouldCollapse, obj, msgCanBeOneLine)}
		}
		return nil
	}
	return out
}
