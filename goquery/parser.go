package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/nhkeasy"
	"golang.org/x/sync/errgroup"
)

var _ nhkeasy.ArticleParser = (*Parser)(nil)

// Selectors locates the parts of an article page.
type Selectors struct {
	// Main scopes all other lookups. When it matches nothing the whole
	// document is used.
	Main string

	Title         string
	TitleFallback string
	Image         string
	Video         string

	// VideoAttr is the attribute of the Video element holding the video ID.
	VideoAttr string

	Paragraphs string
}

// DefaultSelectors returns the selectors for NHK News Web Easy pages.
func DefaultSelectors() Selectors {
	return Selectors{
		Main:          "#main",
		Title:         "#newstitle h2",
		TitleFallback: "#newstitle",
		Image:         "#mainimage img[src]",
		Video:         "#mainimage [data-video]",
		VideoAttr:     "data-video",
		Paragraphs:    "#newsarticle p",
	}
}

// Parser implements nhkeasy.ArticleParser using goquery.
type Parser struct {
	Classifier *nhkeasy.Classifier
	Selectors  Selectors

	// Concurrency is the number of paragraphs classified in parallel.
	// Values below 2 classify sequentially. Output is the same either way.
	Concurrency int

	// KeepBlank keeps untagged tokens whose text is only whitespace.
	KeepBlank bool
}

// NewParser creates a new Parser with the default classifier and selectors.
func NewParser() *Parser {
	return &Parser{
		Classifier: nhkeasy.NewClassifier(),
		Selectors:  DefaultSelectors(),
	}
}

// ParseArticle parses an article page.
func (p *Parser) ParseArticle(html string) (*nhkeasy.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nhkeasy.Errorf(nhkeasy.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Selection
	if main := doc.Find(p.Selectors.Main).First(); main.Length() > 0 {
		root = main
	}

	title := root.Find(p.Selectors.Title).First()
	if title.Length() == 0 {
		title = root.Find(p.Selectors.TitleFallback).First()
	}
	if title.Length() == 0 {
		return nil, nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article title not found")
	}

	article := &nhkeasy.Article{
		Title:      p.classify(title),
		Image:      p.parseImage(root),
		Video:      p.parseVideo(root),
		Paragraphs: p.parseParagraphs(root),
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

func (p *Parser) parseImage(root *goquery.Selection) *nhkeasy.Image {
	img := root.Find(p.Selectors.Image).First()
	src, ok := img.Attr("src")
	src = strings.TrimSpace(src)
	if !ok || src == "" {
		return nil
	}
	alt, _ := img.Attr("alt")
	return &nhkeasy.Image{
		URL:     src,
		Caption: strings.TrimSpace(alt),
	}
}

func (p *Parser) parseVideo(root *goquery.Selection) string {
	video, _ := root.Find(p.Selectors.Video).First().Attr(p.Selectors.VideoAttr)
	return strings.TrimSpace(video)
}

// parseParagraphs classifies each paragraph, dropping those without tokens.
func (p *Parser) parseParagraphs(root *goquery.Selection) []nhkeasy.Tokens {
	sel := root.Find(p.Selectors.Paragraphs)
	results := make([]nhkeasy.Tokens, sel.Length())

	if p.Concurrency < 2 {
		sel.Each(func(i int, s *goquery.Selection) {
			results[i] = p.classify(s)
		})
	} else {
		var g errgroup.Group
		g.SetLimit(p.Concurrency)
		sel.Each(func(i int, s *goquery.Selection) {
			g.Go(func() error {
				results[i] = p.classify(s)
				return nil
			})
		})
		_ = g.Wait()
	}

	paragraphs := make([]nhkeasy.Tokens, 0, len(results))
	for _, tokens := range results {
		if len(tokens) > 0 {
			paragraphs = append(paragraphs, tokens)
		}
	}
	return paragraphs
}

func (p *Parser) classify(sel *goquery.Selection) nhkeasy.Tokens {
	c := p.Classifier
	if c == nil {
		c = nhkeasy.NewClassifier()
	}
	tokens := c.Classify(ChildNodes(sel))
	if p.KeepBlank {
		return tokens
	}
	return dropBlank(tokens)
}

// dropBlank removes untagged tokens whose text is only whitespace.
func dropBlank(tokens nhkeasy.Tokens) nhkeasy.Tokens {
	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Kind == nhkeasy.KindOther && strings.TrimSpace(tok.Text()) == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
