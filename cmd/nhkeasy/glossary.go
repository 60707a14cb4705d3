package main

import (
	"fmt"

	"github.com/fwojciec/nhkeasy"
)

// Run executes the glossary command.
func (c *GlossaryCmd) Run(deps *Dependencies) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{""}
	}

	articles := make([]*nhkeasy.Article, 0, len(files))
	for _, path := range files {
		html, err := readInput(deps, path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		article, err := deps.Parser.ParseArticle(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", displayPath(path), nhkeasy.ErrorMessage(err))
			return err
		}
		articles = append(articles, article)
	}

	var seen nhkeasy.Deduper
	if c.Unique {
		seen = deps.NewDeduper()
	}

	g := nhkeasy.BuildGlossary(articles, seen)
	if g.Len() == 0 {
		fmt.Fprintln(deps.Stdout, "No glossary entries found.")
		return nil
	}
	printGlossary(deps.Stdout, g)
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
