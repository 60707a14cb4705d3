package mock

import (
	"context"

	"github.com/fwojciec/nhkeasy"
)

var _ nhkeasy.ArticleParser = (*ArticleParser)(nil)

// ArticleParser is a mock implementation of nhkeasy.ArticleParser.
type ArticleParser struct {
	ParseArticleFn func(html string) (*nhkeasy.Article, error)
}

func (p *ArticleParser) ParseArticle(html string) (*nhkeasy.Article, error) {
	return p.ParseArticleFn(html)
}

var _ nhkeasy.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of nhkeasy.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *nhkeasy.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*nhkeasy.Article, error)
	FindArticlesFn    func(ctx context.Context, filter nhkeasy.ArticleFilter) ([]*nhkeasy.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *nhkeasy.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*nhkeasy.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter nhkeasy.ArticleFilter) ([]*nhkeasy.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ nhkeasy.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of nhkeasy.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *nhkeasy.Article) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *nhkeasy.Article) error {
	return w.WriteArticleFn(ctx, article)
}
