// Package fs provides file-based export of articles.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/nhkeasy"
)

// ArticlePath returns the file name an article is exported to.
// Saved articles use their ID; others are named after their source.
// Example: source "downloads/k10011.html" → k10011.md
func ArticlePath(a *nhkeasy.Article) (string, error) {
	if a.ID != "" {
		return a.ID + ".md", nil
	}

	base := filepath.Base(a.Source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, base)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "", nhkeasy.Errorf(nhkeasy.EINVALID, "article needs an ID or source to be exported")
	}
	return slug + ".md", nil
}

// FormatArticle formats an article as markdown with YAML frontmatter.
// Readings follow their base text in parentheses.
func FormatArticle(a *nhkeasy.Article) string {
	var b strings.Builder
	b.WriteString("---\n")
	if a.ID != "" {
		b.WriteString("id: " + a.ID + "\n")
	}
	if a.Source != "" {
		b.WriteString("source: " + a.Source + "\n")
	}
	b.WriteString("title: " + a.Title.Text() + "\n")
	if !a.CreatedAt.IsZero() {
		b.WriteString("saved: " + a.CreatedAt.Format("2006-01-02") + "\n")
	}
	if a.Image != nil {
		b.WriteString("image: " + a.Image.URL + "\n")
	}
	if a.Video != "" {
		b.WriteString("video: " + a.Video + "\n")
	}
	b.WriteString("---\n\n")

	b.WriteString("# " + a.Title.String() + "\n")
	if a.Image != nil {
		b.WriteString("\n![" + a.Image.Caption + "](" + a.Image.URL + ")\n")
	}
	for _, p := range a.Paragraphs {
		b.WriteString("\n" + p.String() + "\n")
	}

	g := nhkeasy.BuildGlossary([]*nhkeasy.Article{a}, nil)
	writeSection(&b, "Vocabulary", fragmentStrings(g.Vocabulary))
	writeSection(&b, "Locations", tokenStrings(g.Locations))
	writeSection(&b, "Names", tokenStrings(g.Names))

	return b.String()
}

func writeSection(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n## " + heading + "\n\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

func fragmentStrings(fragments []nhkeasy.Fragment) []string {
	out := make([]string, len(fragments))
	for i, f := range fragments {
		out[i] = f.String()
	}
	return out
}

func tokenStrings(tokens []nhkeasy.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.String()
	}
	return out
}

// Ensure Writer implements nhkeasy.ArticleWriter at compile time.
var _ nhkeasy.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns where WriteArticle puts a.
func (w *Writer) Path(a *nhkeasy.Article) (string, error) {
	rel, err := ArticlePath(a)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.baseDir, rel), nil
}

// WriteArticle writes an article to disk as a markdown file.
// The file is written to a temporary name first and renamed into place.
func (w *Writer) WriteArticle(ctx context.Context, a *nhkeasy.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	fullPath, err := w.Path(a)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(FormatArticle(a)), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
