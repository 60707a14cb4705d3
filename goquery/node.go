// Package goquery implements article parsing on top of goquery and the
// golang.org/x/net/html node tree it exposes.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nhkeasy"
	"golang.org/x/net/html"
)

var _ nhkeasy.Node = Node{}

// Node adapts an *html.Node to nhkeasy.Node.
type Node struct {
	n *html.Node
}

// NewNode wraps n.
func NewNode(n *html.Node) Node {
	return Node{n: n}
}

// Tag returns the element name, or "" for text, comment and document nodes.
func (n Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// Attr returns the value of the named attribute.
func (n Node) Attr(name string) (string, bool) {
	if n.n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Children returns the child nodes, text nodes included.
func (n Node) Children() []nhkeasy.Node {
	var children []nhkeasy.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, Node{n: c})
	}
	return children
}

// Text returns the content of a text node.
func (n Node) Text() (string, bool) {
	if n.n.Type != html.TextNode {
		return "", false
	}
	return n.n.Data, true
}

// ChildNodes returns the children of every node in sel, in document order.
func ChildNodes(sel *goquery.Selection) []nhkeasy.Node {
	contents := sel.Contents()
	nodes := make([]nhkeasy.Node, 0, contents.Length())
	for _, n := range contents.Nodes {
		nodes = append(nodes, Node{n: n})
	}
	return nodes
}
