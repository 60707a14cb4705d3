// Package slog provides logging decorators for nhkeasy services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/nhkeasy"
)

// Ensure LoggingParser implements nhkeasy.ArticleParser.
var _ nhkeasy.ArticleParser = (*LoggingParser)(nil)

// LoggingParser wraps an ArticleParser with debug logging.
type LoggingParser struct {
	next   nhkeasy.ArticleParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next nhkeasy.ArticleParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// ParseArticle delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) ParseArticle(html string) (article *nhkeasy.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title.Text(),
				"paragraphs", len(article.Paragraphs),
			)
		}
		attrs = append(attrs, "err", err)
		p.logger.Info("parse article", attrs...)
	}(time.Now())
	return p.next.ParseArticle(html)
}
