package nhkeasy

// Node is the minimal view of a parsed HTML node the classifier needs.
// Implementations wrap a concrete parser's tree (see goquery.Node).
type Node interface {
	// Tag returns the lowercase element name, or "" for non-element nodes.
	Tag() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Children returns the node's children in document order.
	Children() []Node

	// Text returns the content of a text node.
	// Returns false for any other node type.
	Text() (string, bool)
}
