// Package syntax defines the parser-independent syntax tree the lint rules
// inspect.
package syntax

// Kind classifies a syntax node.
type Kind int

const (
	// KindUnknown is a node the parser adapter could not classify.
	KindUnknown Kind = iota
	// KindProgram is the root of a file.
	KindProgram
	// KindObject is an object literal ({ a: 1 }).
	KindObject
	// KindProperty is a member of an object literal (pair, shorthand, spread, method).
	KindProperty
	// KindArray is an array literal.
	KindArray
	// KindCall is a call expression (f(x)).
	KindCall
	// KindNew is a constructor call (new F(x)).
	KindNew
	// KindArrowFunction is an arrow function.
	KindArrowFunction
	// KindFunction is a function expression or method body.
	KindFunction
	// KindJSX is a JSX element.
	KindJSX
	// KindConditional is a ternary expression.
	KindConditional
	// KindBinary is a binary expression.
	KindBinary
	// KindMember is a member or subscript access (a.b, a[b]).
	KindMember
	// KindIdentifier is a bare identifier.
	KindIdentifier
	// KindLiteral is a string, number, boolean, null, regex or undefined.
	KindLiteral
	// KindTemplate is a template string.
	KindTemplate
	// KindUnary is a unary expression (!a, -1, typeof a).
	KindUnary
	// KindAssignment is an assignment expression, augmented ones included.
	KindAssignment
	// KindVariableDeclarator is a single binding in a var/let/const declaration.
	KindVariableDeclarator
	// KindOther is any named node with no special meaning to the rules.
	KindOther
)

var kindNames = [...]string{
	KindUnknown:            "Unknown",
	KindProgram:            "Program",
	KindObject:             "Object",
	KindProperty:           "Property",
	KindArray:              "Array",
	KindCall:               "Call",
	KindNew:                "New",
	KindArrowFunction:      "ArrowFunction",
	KindFunction:           "Function",
	KindJSX:                "JSX",
	KindConditional:        "Conditional",
	KindBinary:             "Binary",
	KindMember:             "Member",
	KindIdentifier:         "Identifier",
	KindLiteral:            "Literal",
	KindTemplate:           "Template",
	KindUnary:              "Unary",
	KindAssignment:         "Assignment",
	KindVariableDeclarator: "VariableDeclarator",
	KindOther:              "Other",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Edge selects the start or end boundary of a node.
type Edge int

const (
	// Start is the first character of a node.
	Start Edge = iota
	// End is the last character of a node.
	End
)

// Node is a single element of an immutable syntax tree. Nodes are built
// once by the parser adapter and never mutated by rules.
type Node struct {
	Kind Kind
	Type string // Raw node type reported by the parser.

	StartLine   int // 1-indexed.
	EndLine     int // 1-indexed.
	StartColumn int // 1-indexed, in characters.
	EndColumn   int // 1-indexed, exclusive.

	Text string // Verbatim source slice.

	Parent   *Node
	Children []*Node

	// value is the initializer of a KindProperty node. Nil for shorthand
	// and spread properties.
	value *Node
}

// NewProperty returns a property node whose value is v. v may be nil.
func NewProperty(v *Node) *Node {
	return &Node{Kind: KindProperty, value: v}
}

// SetValue sets the value of a property node.
func (n *Node) SetValue(v *Node) {
	n.value = v
}

// Value returns the value of a property, or nil when the property has none
// or n is not a property.
func (n *Node) Value() *Node {
	if n == nil || n.Kind != KindProperty {
		return nil
	}
	return n.value
}

// Properties returns the properties of an object literal in source order.
// It returns nil for any other kind.
func (n *Node) Properties() []*Node {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	return n.childrenOf(KindProperty)
}

// Elements returns the elements of an array literal in source order.
// It returns nil for any other kind.
func (n *Node) Elements() []*Node {
	if n == nil || n.Kind != KindArray {
		return nil
	}
	return n.Children
}

func (n *Node) childrenOf(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Line returns the line of the node's start or end boundary.
func (n *Node) Line(edge Edge) int {
	if edge == End {
		return n.EndLine
	}
	return n.StartLine
}

// IsMultiline reports whether the node spans more than one line.
func (n *Node) IsMultiline() bool {
	return n.StartLine != n.EndLine
}

// ClosestAncestor returns the distance to the nearest ancestor whose kind
// is one of kinds (1 for the parent), or -1 when there is none.
func (n *Node) ClosestAncestor(kinds ...Kind) int {
	depth := 1
	for p := n.Parent; p != nil; p = p.Parent {
		for _, k := range kinds {
			if p.Kind == k {
				return depth
			}
		}
		depth++
	}
	return -1
}

// AppendChild links c under n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}
