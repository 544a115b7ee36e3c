package carrying

import (
	"fmt"

	"github.com/donaldgifford/carrylint/internal/syntax"
)

// ViolationKind identifies why an object literal was rejected.
type ViolationKind int

const (
	// ContentWidth: a single-line object is wider than MaxContentWidth.
	ContentWidth ViolationKind = iota
	// Carrying: properties are neither all on one line nor one per line.
	Carrying
	// ComplexValues: a single-line object holds a complex value.
	ComplexValues
	// TooManySingleLineProperties: a single-line object has more than
	// MaxSingleLineProperties properties.
	TooManySingleLineProperties
	// ShouldCollapse: a multi-line object is small enough for one line.
	ShouldCollapse
	// CallExpressionCount: a single-line object holds too many calls.
	CallExpressionCount
	// FunctionWidth: a single-line object holds a call or function that is
	// too long.
	FunctionWidth
	// NestedObjectProperties: a single-line object holds an object with too
	// many properties.
	NestedObjectProperties
	// NestedArrayElements: a single-line object holds an array with too
	// many elements.
	NestedArrayElements
)

var violationNames = [...]string{
	ContentWidth:                "content-width",
	Carrying:                    "carrying",
	ComplexValues:               "complex-values",
	TooManySingleLineProperties: "count-properties",
	ShouldCollapse:              "should-collapse",
	CallExpressionCount:         "count-call-expressions",
	FunctionWidth:               "function-length",
	NestedObjectProperties:      "count-nested-object-properties",
	NestedArrayElements:         "count-nested-array-elements",
}

// String returns the violation's short name.
func (k ViolationKind) String() string {
	if k < 0 || int(k) >= len(violationNames) {
		return "unknown"
	}
	return violationNames[k]
}

// Message templates. %d is the threshold that was exceeded.
const (
	msgContentWidth           = "content width of object is more than %d"
	msgCarrying               = "object properties must be in single line or each on new line"
	msgComplexValues          = "denied using complex values on single line properties"
	msgTooManyProperties      = "an object in single line must contain not more than %d properties"
	msgCarryingMinProperties  = "an object with carrying properties must contain more than %d properties"
	msgCanBeOneLine           = "the object can be written in one line"
	msgCallExpressionCount    = "an object in single line must contain not more than %d call expressions"
	msgFunctionWidth          = "an object in single line can contain a function no longer than %d characters"
	msgNestedObjectProperties = "an object in single line can contain an object with the number of properties not more than %d"
	msgNestedArrayElements    = "an object in single line can contain an array with the number of elements not more than %d"
)

// Verdict is a single violation found on an object literal.
type Verdict struct {
	Kind    ViolationKind
	Message string
	Node    *syntax.Node
}

func verdict(kind ViolationKind, n *syntax.Node, template string, args ...any) Verdict {
	msg := template
	if len(args) > 0 {
		msg = fmt.Sprintf(template, args...)
	}
	return Verdict{Kind: kind, Message: msg, Node: n}
}
