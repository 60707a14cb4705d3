package nhkeasy

// Deduper remembers keys it has been given.
// Test may report false positives but never false negatives.
type Deduper interface {
	Add(key string)
	Test(key string) bool
}

// Glossary lists the annotated words of one or more articles by category.
type Glossary struct {
	// Vocabulary holds untagged fragments that carry a reading.
	Vocabulary []Fragment `json:"vocabulary"`
	Locations  []Token    `json:"locations"`
	Names      []Token    `json:"names"`
}

// Len returns the total number of entries.
func (g *Glossary) Len() int {
	return len(g.Vocabulary) + len(g.Locations) + len(g.Names)
}

// BuildGlossary collects glossary entries from the paragraphs of articles in
// document order. Titles are not included. When seen is non-nil, entries
// already reported by seen are skipped.
func BuildGlossary(articles []*Article, seen Deduper) *Glossary {
	g := &Glossary{}

	for _, a := range articles {
		for _, paragraph := range a.Paragraphs {
			for _, tok := range paragraph {
				if !isGlossaryEntry(tok) || isDuplicate(seen, tok) {
					continue
				}
				switch tok.Kind {
				case KindOther:
					g.Vocabulary = append(g.Vocabulary, tok.Fragments[0])
				case KindLocation:
					g.Locations = append(g.Locations, tok)
				case KindName:
					g.Names = append(g.Names, tok)
				}
			}
		}
	}

	return g
}

func isGlossaryEntry(tok Token) bool {
	if tok.Kind != KindOther {
		return len(tok.Fragments) > 0
	}
	f, ok := tok.Fragment()
	return ok && f.HasFurigana()
}

// isDuplicate reports whether seen already holds tok, recording it if not.
func isDuplicate(seen Deduper, tok Token) bool {
	if seen == nil {
		return false
	}
	key := tok.Kind.String() + ":" + tok.String()
	if seen.Test(key) {
		return true
	}
	seen.Add(key)
	return false
}
