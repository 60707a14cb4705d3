package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nhkeasy"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ nhkeasy.ArticleService = (*ArticleService)(nil)

// ArticleService implements nhkeasy.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// ContentHash returns the hex xxHash of an article's content.
// Articles with the same title, media and paragraph tokens hash equally;
// token kinds and token boundaries are part of the hash.
func ContentHash(a *nhkeasy.Article) string {
	h := xxhash.New()
	writeTokens(h, a.Title)
	if a.Image != nil {
		_, _ = h.WriteString("\x00" + a.Image.URL)
	}
	_, _ = h.WriteString("\x00" + a.Video)
	for _, p := range a.Paragraphs {
		_, _ = h.WriteString("\x00")
		writeTokens(h, p)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func writeTokens(h *xxhash.Digest, tokens nhkeasy.Tokens) {
	for _, tok := range tokens {
		_, _ = h.WriteString("\x1e" + tok.Kind.String())
		for _, f := range tok.Fragments {
			_, _ = h.WriteString("\x1f" + f.Text)
			if reading, ok := f.Reading(); ok {
				_, _ = h.WriteString("\x1d" + reading)
			}
		}
	}
}

// CreateArticle saves a new article.
func (s *ArticleService) CreateArticle(ctx context.Context, a *nhkeasy.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	hash := ContentHash(a)
	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM articles WHERE content_hash = ?", hash).Scan(&existing)
	if err == nil {
		return nhkeasy.Errorf(nhkeasy.ECONFLICT, "article already saved as %s", existing)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	title, err := json.Marshal(a.Title)
	if err != nil {
		return fmt.Errorf("failed to encode title: %w", err)
	}
	paragraphs, err := json.Marshal(a.Paragraphs)
	if err != nil {
		return fmt.Errorf("failed to encode paragraphs: %w", err)
	}

	var imageURL, imageCaption string
	if a.Image != nil {
		imageURL, imageCaption = a.Image.URL, a.Image.Caption
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO articles (id, source, content_hash, title_text, title, image_url, image_caption, video, paragraphs, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, a.Source, hash, a.Title.Text(), string(title), imageURL, imageCaption, a.Video,
		string(paragraphs), createdAt.Format(timeFormat))
	if err != nil {
		return err
	}

	a.ID = id
	a.ContentHash = hash
	a.CreatedAt = createdAt
	return nil
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*nhkeasy.Article, error) {
	articles, err := s.FindArticles(ctx, nhkeasy.ArticleFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article %q not found", id)
	}
	return articles[0], nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter nhkeasy.ArticleFilter) ([]*nhkeasy.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, source, content_hash, title, image_url, image_caption, video, paragraphs, created_at
		FROM articles WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*nhkeasy.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article %q not found", id)
	}

	return nil
}

func scanArticle(rows *sql.Rows) (*nhkeasy.Article, error) {
	var a nhkeasy.Article
	var title, paragraphs, imageURL, imageCaption, createdAt string

	if err := rows.Scan(&a.ID, &a.Source, &a.ContentHash, &title, &imageURL, &imageCaption,
		&a.Video, &paragraphs, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(title), &a.Title); err != nil {
		return nil, fmt.Errorf("failed to decode title of article %s: %w", a.ID, err)
	}
	if err := json.Unmarshal([]byte(paragraphs), &a.Paragraphs); err != nil {
		return nil, fmt.Errorf("failed to decode paragraphs of article %s: %w", a.ID, err)
	}
	if imageURL != "" {
		a.Image = &nhkeasy.Image{URL: imageURL, Caption: imageCaption}
	}

	var err error
	a.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &a, nil
}
