package syntax

// Visitor is invoked for a node of the kind it is registered for.
type Visitor func(n *Node)

// Table maps node kinds to the visitors invoked for them, in order.
type Table map[Kind][]Visitor

// Add registers v for kind.
func (t Table) Add(kind Kind, v Visitor) {
	t[kind] = append(t[kind], v)
}

// Walk traverses the tree rooted at root depth-first in source order and
// calls the visitors registered for each node's kind before descending into
// its children. A property's value is one of its children.
func Walk(root *Node, table Table) {
	if root == nil {
		return
	}
	for _, v := range table[root.Kind] {
		v(root)
	}
	for _, c := range root.Children {
		Walk(c, table)
	}
}
