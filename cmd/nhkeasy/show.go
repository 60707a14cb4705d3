package main

import (
	"fmt"

	"github.com/fwojciec/nhkeasy"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if nhkeasy.ErrorCode(err) == nhkeasy.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'nhkeasy list' to see saved articles.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}

	printArticle(deps.Stdout, article, c.Furigana)
	return nil
}
