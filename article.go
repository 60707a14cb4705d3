package nhkeasy

import (
	"context"
	"time"
)

// Image is the lead image of an article.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Article is a parsed news article.
type Article struct {
	ID          string    `json:"id,omitempty"`
	Source      string    `json:"source,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	Title       Tokens    `json:"title"`
	Image       *Image    `json:"image,omitempty"`
	Video       string    `json:"video,omitempty"`
	Paragraphs  []Tokens  `json:"paragraphs"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if len(a.Title) == 0 {
		return Errorf(EINVALID, "article title required")
	}
	if a.Image != nil && a.Image.URL == "" {
		return Errorf(EINVALID, "article image URL required")
	}
	return nil
}

// ArticleParser builds an Article from the HTML of an article page.
type ArticleParser interface {
	// ParseArticle parses a complete article page.
	// Returns ENOTFOUND if the page has no title element and EINVALID if
	// the HTML cannot be parsed or the title is empty.
	ParseArticle(html string) (*Article, error)
}

// ArticleService represents a service for managing saved articles.
type ArticleService interface {
	// CreateArticle saves a new article and assigns its ID, content hash
	// and creation time.
	// Returns ECONFLICT if an article with the same content is already saved.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID          *string `json:"id"`
	Source      *string `json:"source"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleWriter writes articles outside the library, e.g. to disk.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) error
}
