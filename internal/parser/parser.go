// Package parser turns JavaScript and TypeScript source into a syntax tree
// using tree-sitter.
package parser

import (
	"context"
	"fmt"
	"sort"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/donaldgifford/carrylint/internal/syntax"
)

// kindByType maps tree-sitter node types to syntax kinds. Types not listed
// become syntax.KindOther.
var kindByType = map[string]syntax.Kind{
	"program":                         syntax.KindProgram,
	"object":                          syntax.KindObject,
	"array":                           syntax.KindArray,
	"call_expression":                 syntax.KindCall,
	"new_expression":                  syntax.KindNew,
	"arrow_function":                  syntax.KindArrowFunction,
	"function":                        syntax.KindFunction,
	"function_expression":             syntax.KindFunction,
	"generator_function":              syntax.KindFunction,
	"jsx_element":                     syntax.KindJSX,
	"jsx_self_closing_element":        syntax.KindJSX,
	"ternary_expression":              syntax.KindConditional,
	"binary_expression":               syntax.KindBinary,
	"member_expression":               syntax.KindMember,
	"subscript_expression":            syntax.KindMember,
	"identifier":                      syntax.KindIdentifier,
	"string":                          syntax.KindLiteral,
	"number":                          syntax.KindLiteral,
	"true":                            syntax.KindLiteral,
	"false":                           syntax.KindLiteral,
	"null":                            syntax.KindLiteral,
	"undefined":                       syntax.KindLiteral,
	"regex":                           syntax.KindLiteral,
	"template_string":                 syntax.KindTemplate,
	"unary_expression":                syntax.KindUnary,
	"update_expression":               syntax.KindUnary,
	"assignment_expression":           syntax.KindAssignment,
	"augmented_assignment_expression": syntax.KindAssignment,
	"variable_declarator":             syntax.KindVariableDeclarator,
}

// propertyTypes are the object members that count as properties. They are
// only properties when their parent is an object literal.
var propertyTypes = map[string]bool{
	"pair":                          true,
	"shorthand_property_identifier": true,
	"spread_element":                true,
	"method_definition":             true,
}

// File is a parsed source file.
type File struct {
	Root     *syntax.Node
	Language Language
	// HasErrors is true when tree-sitter recovered from syntax errors.
	// The tree is still usable.
	HasErrors bool
}

// Parse converts src into a syntax tree. A fresh tree-sitter parser is used
// per call, so Parse is safe for concurrent use.
func Parse(ctx context.Context, src []byte, lang Language) (*File, error) {
	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(lang.grammar())

	tree, err := p.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source: %w", lang, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	c := newConverter(src)
	return &File{
		Root:      c.convert(root, ""),
		Language:  lang,
		HasErrors: root.HasError(),
	}, nil
}

// converter carries the source and its line index across the conversion.
type converter struct {
	src        []byte
	lineStarts []int // Byte offset of the first byte of each line.
}

// newConverter indexes line starts. "\n", "\r\n", a lone "\r", U+2028 and
// U+2029 all end a line.
func newConverter(src []byte) *converter {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				continue
			}
			starts = append(starts, i+1)
		case 0xE2:
			// UTF-8 of U+2028 and U+2029 is E2 80 A8 and E2 80 A9.
			if i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xA8 || src[i+2] == 0xA9) {
				i += 2
				starts = append(starts, i+1)
			}
		}
	}
	return &converter{src: src, lineStarts: starts}
}

// convert builds the syntax node for n. parentType is the tree-sitter type
// of n's parent.
func (c *converter) convert(n *sitter.Node, parentType string) *syntax.Node {
	typ := n.Type()

	if parentType == "object" && propertyTypes[typ] {
		return c.convertProperty(n)
	}

	kind := kindOf(typ)
	if kind == syntax.KindCall && isTaggedTemplate(n) {
		kind = syntax.KindTemplate
	}

	node := c.newNode(n, kind)
	c.appendChildren(node, n)
	return node
}

// isTaggedTemplate reports whether a call_expression is a tagged template
// (tag`x`), which tree-sitter parses as a call with a template argument.
func isTaggedTemplate(n *sitter.Node) bool {
	args := n.ChildByFieldName("arguments")
	return args != nil && args.Type() == "template_string"
}

// convertProperty builds a KindProperty node. Pairs take their value from
// the "value" field; a method is its own function value; shorthand and
// spread properties have none.
func (c *converter) convertProperty(n *sitter.Node) *syntax.Node {
	typ := n.Type()
	prop := c.newNode(n, syntax.KindProperty)

	switch typ {
	case "method_definition":
		fn := c.newNode(n, syntax.KindFunction)
		c.appendChildren(fn, n)
		prop.AppendChild(fn)
		prop.SetValue(fn)
		return prop

	case "pair":
		value := n.ChildByFieldName("value")
		count := int(n.NamedChildCount())
		for i := 0; i < count; i++ {
			child := n.NamedChild(i)
			if child.Type() == "comment" {
				continue
			}
			converted := c.convert(child, typ)
			prop.AppendChild(converted)
			if value != nil && sameSpan(child, value) {
				prop.SetValue(converted)
			}
		}
		return prop
	}

	c.appendChildren(prop, n)
	return prop
}

func (c *converter) appendChildren(node *syntax.Node, n *sitter.Node) {
	typ := n.Type()
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		node.AppendChild(c.convert(child, typ))
	}
}

func (c *converter) newNode(n *sitter.Node, kind syntax.Kind) *syntax.Node {
	start, end := int(n.StartByte()), int(n.EndByte())
	startLine, startCol := c.position(start)
	endLine, endCol := c.position(end)
	return &syntax.Node{
		Kind:        kind,
		Type:        n.Type(),
		StartLine:   startLine,
		EndLine:     endLine,
		StartColumn: startCol,
		EndColumn:   endCol,
		Text:        string(c.src[start:end]),
	}
}

// position returns the 1-indexed line and character column of a byte offset.
func (c *converter) position(offset int) (line, column int) {
	if offset > len(c.src) {
		offset = len(c.src)
	}
	idx := sort.Search(len(c.lineStarts), func(i int) bool {
		return c.lineStarts[i] > offset
	}) - 1
	lineStart := c.lineStarts[idx]
	return idx + 1, utf8.RuneCount(c.src[lineStart:offset]) + 1
}

func kindOf(typ string) syntax.Kind {
	if k, ok := kindByType[typ]; ok {
		return k
	}
	if typ == "ERROR" {
		return syntax.KindUnknown
	}
	return syntax.KindOther
}

func sameSpan(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
