package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/nhkeasy"
	"github.com/fwojciec/nhkeasy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteArticleFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *nhkeasy.Article
		w := &mock.ArticleWriter{
			WriteArticleFn: func(_ context.Context, a *nhkeasy.Article) error {
				calledWith = a
				return nil
			},
		}

		article := &nhkeasy.Article{Source: "k1.html"}
		err := w.WriteArticle(context.Background(), article)

		require.NoError(t, err)
		assert.Same(t, article, calledWith)
	})
}

func TestNode(t *testing.T) {
	t.Parallel()

	t.Run("text nodes expose content only", func(t *testing.T) {
		t.Parallel()

		n := mock.Text("、")

		text, ok := n.Text()
		assert.True(t, ok)
		assert.Equal(t, "、", text)
		assert.Empty(t, n.Tag())
		assert.Empty(t, n.Children())
	})

	t.Run("ruby builds base text and reading", func(t *testing.T) {
		t.Parallel()

		n := mock.Ruby("強", "つよ")

		assert.Equal(t, "ruby", n.Tag())
		children := n.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "rt", children[1].Tag())
	})

	t.Run("comments are not text", func(t *testing.T) {
		t.Parallel()

		_, ok := mock.Comment("note").Text()

		assert.False(t, ok)
	})
}
