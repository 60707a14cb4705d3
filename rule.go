package nhkeasy

import (
	"fmt"
	"strings"
)

// Rule tells the classifier how to treat an element.
type Rule int

// Rule constants.
const (
	// RuleFragment resolves the node with ResolveFragment and emits an
	// untagged token when it yields.
	RuleFragment Rule = iota

	// RuleUnwrap classifies the element's first child in its place.
	RuleUnwrap

	// RuleLocation emits a place-name token from the element's children.
	RuleLocation

	// RuleName emits a personal-name token from the element's children.
	RuleName

	// RuleDrop emits nothing for the element.
	RuleDrop

	// RuleDescend classifies each child of the element in its place.
	RuleDescend
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleFragment:
		return "fragment"
	case RuleUnwrap:
		return "unwrap"
	case RuleLocation:
		return "location"
	case RuleName:
		return "name"
	case RuleDrop:
		return "drop"
	case RuleDescend:
		return "descend"
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// AnyClass matches an element regardless of its class attribute.
const AnyClass = "*"

// RuleKey selects elements by tag name and a single class value.
type RuleKey struct {
	Tag   string
	Class string
}

// RuleTable maps elements to classification rules.
type RuleTable map[RuleKey]Rule

// DefaultRules returns the rule table for NHK News Web Easy markup.
// The returned table is a fresh copy and may be modified.
//
// Anchors only add dictionary pop-ups and are unwrapped. Spans marked
// colorL are place names and colorN personal names; any other span is
// dropped.
func DefaultRules() RuleTable {
	return RuleTable{
		{Tag: "a", Class: AnyClass}:    RuleUnwrap,
		{Tag: "span", Class: "colorL"}: RuleLocation,
		{Tag: "span", Class: "colorN"}: RuleName,
		{Tag: "span", Class: AnyClass}: RuleDrop,
	}
}

// Lookup returns the rule for an element with the given tag and class
// attribute. Each whitespace-separated class value is tried in order, then
// the tag's AnyClass entry. Non-elements and unlisted tags get RuleFragment.
func (rt RuleTable) Lookup(tag, class string) Rule {
	if tag == "" {
		return RuleFragment
	}
	for _, c := range strings.Fields(class) {
		if r, ok := rt[RuleKey{Tag: tag, Class: c}]; ok {
			return r
		}
	}
	if r, ok := rt[RuleKey{Tag: tag, Class: AnyClass}]; ok {
		return r
	}
	return RuleFragment
}
