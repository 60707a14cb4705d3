package main

import (
	"fmt"

	"github.com/fwojciec/nhkeasy"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}

	if err := deps.NewWriter(c.Dir).WriteArticle(deps.Ctx, article); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %q to %s\n", article.Title.Text(), c.Dir)
	return nil
}
