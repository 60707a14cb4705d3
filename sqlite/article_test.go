package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/nhkeasy"
	"github.com/fwojciec/nhkeasy/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle(title string) *nhkeasy.Article {
	return &nhkeasy.Article{
		Source: "testdata/" + title + ".html",
		Title: nhkeasy.Tokens{
			nhkeasy.OtherToken(nhkeasy.NewRubyFragment(title, "よみ")),
		},
		Image: &nhkeasy.Image{URL: "https://example.com/" + title + ".jpg", Caption: "写真"},
		Video: "k100",
		Paragraphs: []nhkeasy.Tokens{
			{
				nhkeasy.OtherToken(nhkeasy.NewRubyFragment("今", "いま")),
				nhkeasy.LocationToken(nhkeasy.NewFragment("スイス")),
				nhkeasy.NameToken(nhkeasy.NewRubyFragment("田中", "たなか")),
			},
			{nhkeasy.OtherToken(nhkeasy.NewFragment("です。"))},
		},
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, content hash and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		article := testArticle("雪")

		err := svc.CreateArticle(context.Background(), article)
		require.NoError(t, err)

		assert.NotEmpty(t, article.ID)
		assert.Equal(t, sqlite.ContentHash(article), article.ContentHash)
		assert.False(t, article.CreatedAt.IsZero())
	})

	t.Run("returns EINVALID for article without title", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))

		err := svc.CreateArticle(context.Background(), &nhkeasy.Article{})

		require.Error(t, err)
		assert.Equal(t, nhkeasy.EINVALID, nhkeasy.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate content", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateArticle(ctx, testArticle("雪")))

		dup := testArticle("雪")
		dup.Source = "elsewhere.html"
		err := svc.CreateArticle(ctx, dup)

		require.Error(t, err)
		assert.Equal(t, nhkeasy.ECONFLICT, nhkeasy.ErrorCode(err))
		assert.Empty(t, dup.ID)
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips tokens, image and video", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		article := testArticle("雪")
		require.NoError(t, svc.CreateArticle(ctx, article))

		found, err := svc.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)

		assert.Equal(t, article.ID, found.ID)
		assert.Equal(t, article.Source, found.Source)
		assert.Equal(t, article.ContentHash, found.ContentHash)
		assert.Equal(t, article.Title, found.Title)
		assert.Equal(t, article.Image, found.Image)
		assert.Equal(t, article.Video, found.Video)
		assert.Equal(t, article.Paragraphs, found.Paragraphs)
		assert.True(t, article.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("article without image has nil image", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		article := testArticle("雨")
		article.Image = nil
		require.NoError(t, svc.CreateArticle(ctx, article))

		found, err := svc.FindArticleByID(ctx, article.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Image)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))

		_, err := svc.FindArticleByID(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, nhkeasy.ENOTFOUND, nhkeasy.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		first := testArticle("一")
		second := testArticle("二")
		require.NoError(t, svc.CreateArticle(ctx, first))
		require.NoError(t, svc.CreateArticle(ctx, second))

		articles, err := svc.FindArticles(ctx, nhkeasy.ArticleFilter{})
		require.NoError(t, err)

		require.Len(t, articles, 2)
		assert.Equal(t, second.ID, articles[0].ID)
		assert.Equal(t, first.ID, articles[1].ID)
	})

	t.Run("filters by source and content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		first := testArticle("一")
		second := testArticle("二")
		require.NoError(t, svc.CreateArticle(ctx, first))
		require.NoError(t, svc.CreateArticle(ctx, second))

		bySource, err := svc.FindArticles(ctx, nhkeasy.ArticleFilter{Source: &first.Source})
		require.NoError(t, err)
		require.Len(t, bySource, 1)
		assert.Equal(t, first.ID, bySource[0].ID)

		byHash, err := svc.FindArticles(ctx, nhkeasy.ArticleFilter{ContentHash: &second.ContentHash})
		require.NoError(t, err)
		require.Len(t, byHash, 1)
		assert.Equal(t, second.ID, byHash[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		for _, title := range []string{"一", "二", "三"} {
			require.NoError(t, svc.CreateArticle(ctx, testArticle(title)))
		}

		page, err := svc.FindArticles(ctx, nhkeasy.ArticleFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := svc.FindArticles(ctx, nhkeasy.ArticleFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, rest, 1)
		assert.Equal(t, "一", rest[0].Title.Text())
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("removes the article", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()
		article := testArticle("雪")
		require.NoError(t, svc.CreateArticle(ctx, article))

		require.NoError(t, svc.DeleteArticle(ctx, article.ID))

		_, err := svc.FindArticleByID(ctx, article.ID)
		assert.Equal(t, nhkeasy.ENOTFOUND, nhkeasy.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))

		err := svc.DeleteArticle(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, nhkeasy.ENOTFOUND, nhkeasy.ErrorCode(err))
	})
}

func TestContentHash(t *testing.T) {
	t.Parallel()

	a := testArticle("雪")
	b := testArticle("雪")
	b.Source = "other.html"
	c := testArticle("雨")

	assert.Equal(t, sqlite.ContentHash(a), sqlite.ContentHash(b))
	assert.NotEqual(t, sqlite.ContentHash(a), sqlite.ContentHash(c))
	assert.Len(t, sqlite.ContentHash(a), 16)
}

func TestContentHash_TokenKinds(t *testing.T) {
	t.Parallel()

	t.Run("differs when only a span classification differs", func(t *testing.T) {
		t.Parallel()

		location := testArticle("雪")
		name := testArticle("雪")
		name.Paragraphs[0][1] = nhkeasy.NameToken(nhkeasy.NewFragment("スイス"))

		assert.NotEqual(t, sqlite.ContentHash(location), sqlite.ContentHash(name))
	})

	t.Run("differs on blank reading versus no reading", func(t *testing.T) {
		t.Parallel()

		blank := testArticle("雪")
		blank.Paragraphs[1][0] = nhkeasy.OtherToken(nhkeasy.NewRubyFragment("です。", ""))

		assert.NotEqual(t, sqlite.ContentHash(testArticle("雪")), sqlite.ContentHash(blank))
	})

	t.Run("saves articles that differ only in token kind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewArticleService(setupTestDB(t))
		ctx := context.Background()

		location := testArticle("雪")
		name := testArticle("雪")
		name.Paragraphs[0][1] = nhkeasy.NameToken(nhkeasy.NewFragment("スイス"))

		require.NoError(t, svc.CreateArticle(ctx, location))
		require.NoError(t, svc.CreateArticle(ctx, name))
		assert.NotEqual(t, location.ID, name.ID)
	})
}
