package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/nhkeasy"
)

// readInput returns the contents of path, or of stdin when path is empty or "-".
func readInput(deps *Dependencies, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// printArticle writes the title and paragraphs of a, each followed by a
// blank line.
func printArticle(w io.Writer, a *nhkeasy.Article, furigana bool) {
	render := nhkeasy.Tokens.Text
	if furigana {
		render = nhkeasy.Tokens.String
	}
	fmt.Fprintf(w, "%s\n\n", render(a.Title))
	for _, p := range a.Paragraphs {
		fmt.Fprintf(w, "%s\n\n", render(p))
	}
}

// listing selects which token kinds printListing reports.
type listing struct {
	vocabulary bool
	locations  bool
	names      bool
}

// printListing writes one line per selected token of a, in document order.
func printListing(w io.Writer, a *nhkeasy.Article, sel listing) {
	for _, p := range a.Paragraphs {
		for _, tok := range p {
			switch tok.Kind {
			case nhkeasy.KindOther:
				if f, ok := tok.Fragment(); sel.vocabulary && ok && f.HasFurigana() {
					fmt.Fprintf(w, "Vocabulary: %s\n", f)
				}
			case nhkeasy.KindLocation:
				if sel.locations {
					fmt.Fprintf(w, "Location: %s\n", tok)
				}
			case nhkeasy.KindName:
				if sel.names {
					fmt.Fprintf(w, "Name: %s\n", tok)
				}
			}
		}
	}
}

// printGlossary writes the non-empty sections of g.
func printGlossary(w io.Writer, g *nhkeasy.Glossary) {
	first := true
	section := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "%s:\n", heading)
		for _, item := range items {
			fmt.Fprintf(w, "  %s\n", item)
		}
	}

	vocabulary := make([]string, len(g.Vocabulary))
	for i, f := range g.Vocabulary {
		vocabulary[i] = f.String()
	}
	section("Vocabulary", vocabulary)
	section("Locations", tokenStrings(g.Locations))
	section("Names", tokenStrings(g.Names))
}

func tokenStrings(tokens []nhkeasy.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}
