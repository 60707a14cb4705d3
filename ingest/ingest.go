// Package ingest provides batch ingestion of saved NHK News Web Easy pages.
// It coordinates reading, parsing, and storage of articles.
package ingest

import (
	"context"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nhkeasy"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files read and parsed at once when
// Ingester.Concurrency is unset.
const DefaultConcurrency = 4

// Ingester orchestrates the ingestion of article pages into the library.
type Ingester struct {
	Parser      nhkeasy.ArticleParser
	Articles    nhkeasy.ArticleService
	Concurrency int

	// ReadFile loads a page by path. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// Result holds the outcome of an ingest operation.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during ingestion.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingest progress.
type ProgressFunc func(event ProgressEvent)

// parseResult holds the outcome of processing a single path.
type parseResult struct {
	position int
	path     string
	hash     uint64
	article  *nhkeasy.Article
	err      error
}

// Ingest reads and parses every path, then stores the parsed articles in
// input order. Articles already in the library, and files repeated within
// the batch, are counted as skipped.
func (in *Ingester) Ingest(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	if len(paths) == 0 {
		return &Result{}, nil
	}

	concurrency := in.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(paths)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan parseResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			g.Go(func() error {
				resultCh <- in.process(gctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results by position.
	results := make([]parseResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Path:      r.path,
		}
		if r.err != nil {
			event.Type = ProgressFailed
			event.Error = r.err
		}
		notify(progress, event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result Result
	seen := make(map[uint64]struct{}, total)
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			continue
		}

		if _, ok := seen[r.hash]; ok {
			result.Skipped++
			continue
		}
		seen[r.hash] = struct{}{}

		if err := in.Articles.CreateArticle(ctx, r.article); err != nil {
			if nhkeasy.ErrorCode(err) == nhkeasy.ECONFLICT {
				result.Skipped++
				continue
			}
			result.Failed++
			notify(progress, ProgressEvent{
				Type:      ProgressFailed,
				Completed: total,
				Total:     total,
				Path:      r.path,
				Error:     err,
			})
			continue
		}
		result.Saved++
	}

	notify(progress, ProgressEvent{
		Type:      ProgressFinished,
		Completed: total,
		Total:     total,
	})

	return &result, nil
}

// process reads and parses a single path.
func (in *Ingester) process(ctx context.Context, position int, path string) parseResult {
	result := parseResult{position: position, path: path}

	if err := ctx.Err(); err != nil {
		result.err = err
		return result
	}

	readFile := in.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		result.err = fmt.Errorf("read %s: %w", path, err)
		return result
	}

	article, err := in.Parser.ParseArticle(string(data))
	if err != nil {
		result.err = err
		return result
	}
	article.Source = path

	result.hash = xxhash.Sum64(data)
	result.article = article
	return result
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
