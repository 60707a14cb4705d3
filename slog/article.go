package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nhkeasy"
)

// Ensure LoggingArticleService implements nhkeasy.ArticleService.
var _ nhkeasy.ArticleService = (*LoggingArticleService)(nil)

// LoggingArticleService wraps an ArticleService with debug logging.
type LoggingArticleService struct {
	next   nhkeasy.ArticleService
	logger *slog.Logger
}

// NewLoggingArticleService creates a new LoggingArticleService.
func NewLoggingArticleService(next nhkeasy.ArticleService, logger *slog.Logger) *LoggingArticleService {
	return &LoggingArticleService{next: next, logger: logger}
}

// CreateArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) CreateArticle(ctx context.Context, article *nhkeasy.Article) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create article",
			"id", article.ID,
			"source", article.Source,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArticle(ctx, article)
}

// FindArticleByID delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticleByID(ctx context.Context, id string) (article *nhkeasy.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find article",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticleByID(ctx, id)
}

// FindArticles delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) FindArticles(ctx context.Context, filter nhkeasy.ArticleFilter) (articles []*nhkeasy.Article, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find articles",
			"count", len(articles),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArticles(ctx, filter)
}

// DeleteArticle delegates to the wrapped service and logs the operation.
func (s *LoggingArticleService) DeleteArticle(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete article",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteArticle(ctx, id)
}
