package dom

import "strings"

// Attr is a single element attribute.
type Attr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Node is one element of a configuration tree.
type Node struct {
	// Name is the element name.
	Name string `yaml:"name"`

	// Value is the trimmed text content. Empty means unset.
	Value string `yaml:"value,omitempty"`

	// Attrs keeps attributes in document order.
	Attrs []Attr `yaml:"attrs,omitempty"`

	// Children keeps child elements in document order.
	Children []*Node `yaml:"children,omitempty"`

	// Line and Column record where the element started (1-based, 0 if unknown).
	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// New creates a node with the given name.
func New(name string) *Node {
	return &Node{Name: name}
}

// NewValue creates a leaf node carrying a scalar value.
func NewValue(name, value string) *Node {
	return &Node{Name: name, Value: value}
}

// AddChild appends child and returns the receiver for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all children with the given name in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the value of the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute, keeping its position.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Clone returns a deep copy of the node. Cloning nil returns nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Name:   n.Name,
		Value:  n.Value,
		Line:   n.Line,
		Column: n.Column,
	}
	if n.Attrs != nil {
		c.Attrs = make([]Attr, len(n.Attrs))
		copy(c.Attrs, n.Attrs)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// Equal reports whether two trees have the same names, values, attributes
// and children. Source positions are ignored.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || n.Value != o.Value {
		return false
	}
	if len(n.Attrs) != len(o.Attrs) || len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Attrs {
		if n.Attrs[i] != o.Attrs[i] {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the tree as compact XML-like text for debugging.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(n.Name)
	for _, a := range n.Attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteString(`"`)
	}
	if n.Value == "" && len(n.Children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteString(">")
	sb.WriteString(n.Value)
	for _, c := range n.Children {
		c.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Name)
	sb.WriteString(">")
}
