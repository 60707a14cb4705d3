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

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes article when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Articles: &mock.ArticleService{
				DeleteArticleFn: func(_ context.Context, id string) error {
					deletedID = id
					return nil
				},
			},
		}

		cmd := &main.DeleteCmd{ID: "art-1", Force: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "art-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Articles: &mock.ArticleService{},
		}

		cmd := &main.DeleteCmd{ID: "art-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, nhkeasy.EINVALID, nhkeasy.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("reports missing article", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Articles: &mock.ArticleService{
				DeleteArticleFn: func(_ context.Context, _ string) error {
					return nhkeasy.Errorf(nhkeasy.ENOTFOUND, "article not found")
				},
			},
		}

		cmd := &main.DeleteCmd{ID: "nope", Force: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), `article "nope" not found`)
	})
}
