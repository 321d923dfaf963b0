package page

import (
	"slices"
	"strings"
)

// Attr is a single element attribute. Attributes keep insertion order so
// two builds of the same profile render byte-identical output.
type Attr struct {
	Key string
	Val string
}

// Node is one element or text run in the document tree. A node with an empty
// Tag is a text node and only Text is meaningful.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
	Motion   *Motion
}

// El builds an element node.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Text builds a text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// A is shorthand for building an attribute list from key/value pairs.
// A trailing key without a value is ignored.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs = append(attrs, Attr{Key: kv[i], Val: kv[i+1]})
	}
	return attrs
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of key and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the id attribute, or "".
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// HasClass reports whether class is one of n's space separated classes.
func (n *Node) HasClass(class string) bool {
	v, ok := n.Attr("class")
	if !ok {
		return false
	}
	return slices.Contains(strings.Fields(v), class)
}

// Animate attaches entrance animation metadata and returns n.
func (n *Node) Animate(m Motion) *Node {
	n.Motion = &m
	return n
}

// Walk visits n and its descendants depth first, in document order. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every node in document order for which match is true.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindByID returns the first element whose id is id, or nil.
func (n *Node) FindByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if !c.IsText() && c.ID() == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates every text node under n.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.IsText() {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// ByClass matches elements carrying class.
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool { return !n.IsText() && n.HasClass(class) }
}
