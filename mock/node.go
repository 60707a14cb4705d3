package mock

import "github.com/fwojciec/nhkeasy"

var _ nhkeasy.Node = (*Node)(nil)

// Node is an in-memory nhkeasy.Node for building trees in tests.
type Node struct {
	TagName  string
	Attrs    map[string]string
	Nodes    []*Node
	Content  string
	TextNode bool
}

// Text returns a text node.
func Text(content string) *Node {
	return &Node{Content: content, TextNode: true}
}

// Comment returns a comment node.
func Comment(content string) *Node {
	return &Node{Content: content}
}

// Elem returns an element node with the given attributes and children.
func Elem(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{TagName: tag, Attrs: attrs, Nodes: children}
}

// Ruby returns <ruby>base<rt>reading</rt></ruby>.
func Ruby(base, reading string) *Node {
	return Elem("ruby", nil, Text(base), Elem("rt", nil, Text(reading)))
}

// Nodes converts mock nodes to a slice of nhkeasy.Node.
func Nodes(nodes ...*Node) []nhkeasy.Node {
	out := make([]nhkeasy.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func (n *Node) Tag() string {
	return n.TagName
}

func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

func (n *Node) Children() []nhkeasy.Node {
	return Nodes(n.Nodes...)
}

func (n *Node) Text() (string, bool) {
	if !n.TextNode {
		return "", false
	}
	return n.Content, true
}
