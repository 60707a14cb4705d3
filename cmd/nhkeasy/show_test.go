package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/nhkeasy"
	main "github.com/fwojciec/nhkeasy/cmd/nhkeasy"
	"github.com/fwojciec/nhkeasy/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints saved article with readings", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Articles: &mock.ArticleService{
				FindArticleByIDFn: func(_ context.Context, id string) (*nhkeasy.Article, error) {
					require.Equal(t, "art-1", id)
					return sampleArticle(), nil
				},
			},
		}

		cmd := &main.ShowCmd{ID: "art-1", Furigana: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "ニュース\n\n大阪(おおさか)の山田店(みせ)\n\n", stdout.String())
	})

	t.Run("suggests list when article is missing", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Articles: &mock.ArticleService{
				FindArticleByIDFn: func(_ context.Context, _ string) (*nhkeasy.Article, error) {
					return nil, nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article not found")
				},
			},
		}

		cmd := &main.ShowCmd{ID: "nope"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, nhkeasy.ENOTFOUND, nhkeasy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "nhkeasy list")
	})
}
