package nhkeasy

import "strings"

// DefaultMaxDepth is how many anchors the classifier unwraps before giving
// up on a node. Article markup nests anchors one level deep.
const DefaultMaxDepth = 1

// DefaultMaxDescend is how many elements RuleDescend looks into before giving
// up on a node.
const DefaultMaxDescend = 4

// Classifier turns sibling nodes into a token sequence.
type Classifier struct {
	// Rules maps elements to classification rules.
	// A nil table behaves as DefaultRules().
	Rules RuleTable

	// MaxDepth caps RuleUnwrap nesting. Nodes beyond the cap produce no
	// token. Zero means DefaultMaxDepth.
	MaxDepth int

	// MaxDescend caps RuleDescend nesting, counted apart from MaxDepth.
	// Zero means DefaultMaxDescend.
	MaxDescend int
}

// NewClassifier returns a Classifier with the default rules.
func NewClassifier() *Classifier {
	return &Classifier{
		Rules:      DefaultRules(),
		MaxDepth:   DefaultMaxDepth,
		MaxDescend: DefaultMaxDescend,
	}
}

var defaultClassifier = NewClassifier()

// Classify classifies nodes using the default rules.
func Classify(nodes []Node) Tokens {
	return defaultClassifier.Classify(nodes)
}

// Classify returns the tokens for nodes in document order. Each node
// contributes at most one token under the default rules; nodes that carry no
// recognizable content are skipped. Classify never fails.
func (c *Classifier) Classify(nodes []Node) Tokens {
	tokens := make(Tokens, 0, len(nodes))
	for _, n := range nodes {
		tokens = c.classify(tokens, n, 0, 0)
	}
	return tokens
}

// classify appends the tokens of n. unwrapped counts the enclosing anchors
// and descended the enclosing RuleDescend elements.
func (c *Classifier) classify(dst Tokens, n Node, unwrapped, descended int) Tokens {
	class, _ := n.Attr("class")

	switch c.rules().Lookup(n.Tag(), class) {
	case RuleUnwrap:
		children := n.Children()
		if len(children) == 0 || unwrapped >= c.maxDepth() {
			return dst
		}
		return c.classify(dst, children[0], unwrapped+1, descended)
	case RuleLocation:
		return append(dst, LocationToken(resolveFragments(n.Children())...))
	case RuleName:
		return append(dst, NameToken(resolveFragments(n.Children())...))
	case RuleDrop:
		return dst
	case RuleDescend:
		if descended >= c.maxDescend() {
			return dst
		}
		for _, child := range n.Children() {
			dst = c.classify(dst, child, unwrapped, descended+1)
		}
		return dst
	default:
		if f, ok := ResolveFragment(n); ok {
			return append(dst, OtherToken(f))
		}
		return dst
	}
}

func (c *Classifier) rules() RuleTable {
	if c.Rules == nil {
		return defaultClassifier.Rules
	}
	return c.Rules
}

func (c *Classifier) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c *Classifier) maxDescend() int {
	if c.MaxDescend <= 0 {
		return DefaultMaxDescend
	}
	return c.MaxDescend
}

// resolveFragments resolves each node, skipping those that yield nothing.
func resolveFragments(nodes []Node) []Fragment {
	var fragments []Fragment
	for _, n := range nodes {
		if f, ok := ResolveFragment(n); ok {
			fragments = append(fragments, f)
		}
	}
	return fragments
}

// ResolveFragment converts a text node or a ruby element into a Fragment.
//
// A text node yields its raw text, whitespace included. A ruby element
// yields its first non-blank base text, trimmed, skipping rt and rp content,
// with the full text of its first rt element as the reading. A ruby element
// without base text, and every other node, yields nothing.
func ResolveFragment(n Node) (Fragment, bool) {
	if text, ok := n.Text(); ok {
		return Fragment{Text: text}, true
	}
	if n.Tag() != "ruby" {
		return Fragment{}, false
	}

	base, ok := rubyBase(n)
	if !ok {
		return Fragment{}, false
	}

	f := Fragment{Text: base}
	if rt, ok := findElement(n, "rt"); ok {
		reading := textContent(rt)
		f.Furigana = &reading
	}
	return f, true
}

// rubyBase finds the first non-blank text below n outside rt and rp.
func rubyBase(n Node) (string, bool) {
	for _, child := range n.Children() {
		if text, ok := child.Text(); ok {
			if s := strings.TrimSpace(text); s != "" {
				return s, true
			}
			continue
		}
		switch child.Tag() {
		case "rt", "rp":
			continue
		}
		if s, ok := rubyBase(child); ok {
			return s, true
		}
	}
	return "", false
}

// findElement returns the first descendant of n with the given tag,
// searching depth-first.
func findElement(n Node, tag string) (Node, bool) {
	for _, child := range n.Children() {
		if child.Tag() == tag {
			return child, true
		}
		if found, ok := findElement(child, tag); ok {
			return found, true
		}
	}
	return nil, false
}

// textContent concatenates all text below n.
func textContent(n Node) string {
	if text, ok := n.Text(); ok {
		return text
	}
	var sb strings.Builder
	for _, child := range n.Children() {
		sb.WriteString(textContent(child))
	}
	return sb.String()
}
