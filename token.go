package nhkeasy

import (
	"fmt"
	"strings"
)

// Kind identifies the semantic category of a Token.
type Kind int

// Kind constants.
const (
	KindOther Kind = iota
	KindLocation
	KindName
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindLocation:
		return "location"
	case KindName:
		return "name"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindOther, KindLocation, KindName:
		return []byte(k.String()), nil
	}
	return nil, Errorf(EINVALID, "unknown token kind %d", int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "other":
		*k = KindOther
	case "location":
		*k = KindLocation
	case "name":
		*k = KindName
	default:
		return Errorf(EINVALID, "unknown token kind %q", text)
	}
	return nil
}

// Token is a classified unit of paragraph content.
//
// A KindOther token holds exactly one fragment. KindLocation and KindName
// tokens hold the fragments of the tagged element in document order; the
// slice may be empty.
type Token struct {
	Kind      Kind       `json:"kind"`
	Fragments []Fragment `json:"fragments"`
}

// OtherToken returns an untagged token for f.
func OtherToken(f Fragment) Token {
	return Token{Kind: KindOther, Fragments: []Fragment{f}}
}

// LocationToken returns a place-name token.
func LocationToken(fragments ...Fragment) Token {
	return Token{Kind: KindLocation, Fragments: fragments}
}

// NameToken returns a personal-name token.
func NameToken(fragments ...Fragment) Token {
	return Token{Kind: KindName, Fragments: fragments}
}

// Fragment returns the first fragment of the token.
// Returns false when the token has no fragments.
func (t Token) Fragment() (Fragment, bool) {
	if len(t.Fragments) == 0 {
		return Fragment{}, false
	}
	return t.Fragments[0], true
}

// Text concatenates the text of all fragments, without readings.
func (t Token) Text() string {
	var sb strings.Builder
	for _, f := range t.Fragments {
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// String concatenates all fragments with their readings.
func (t Token) String() string {
	var sb strings.Builder
	for _, f := range t.Fragments {
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Tokens is the ordered token sequence of one paragraph or title.
type Tokens []Token

// Text concatenates the text of every token, without readings.
func (ts Tokens) Text() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

// String concatenates every token with readings.
func (ts Tokens) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.String())
	}
	return sb.String()
}
