package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/nhkeasy"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	article, err := deps.Parser.ParseArticle(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}
	article.Source = c.File

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	printArticle(deps.Stdout, article, c.Furigana)
	printListing(deps.Stdout, article, listing{
		vocabulary: c.Vocabulary,
		locations:  c.Locations,
		names:      c.Names,
	})
	return nil
}
