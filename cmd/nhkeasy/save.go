package main

import (
	"fmt"

	"github.com/fwojciec/nhkeasy"
	"github.com/fwojciec/nhkeasy/ingest"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	if len(c.Files) == 0 {
		return c.saveStdin(deps)
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Parsing %d files\n", event.Total)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := deps.Ingester.Ingest(deps.Ctx, c.Files, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d articles (%d already saved, %d failed)\n",
		result.Saved, result.Skipped, result.Failed)
	return nil
}

func (c *SaveCmd) saveStdin(deps *Dependencies) error {
	html, err := readInput(deps, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	article, err := deps.Parser.ParseArticle(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}

	if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
		if nhkeasy.ErrorCode(err) == nhkeasy.ECONFLICT {
			fmt.Fprintln(deps.Stdout, "Article already saved")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", nhkeasy.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %q (%s)\n", article.Title.Text(), article.ID)
	return nil
}
