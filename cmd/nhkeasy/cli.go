package main

import (
	"context"
	"io"

	"github.com/fwojciec/nhkeasy"
	"github.com/fwojciec/nhkeasy/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Parser     nhkeasy.ArticleParser
	Articles   nhkeasy.ArticleService
	Ingester   *ingest.Ingester
	NewWriter  func(dir string) nhkeasy.ArticleWriter
	NewDeduper func() nhkeasy.Deduper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool   `help:"Log parser and library calls to stderr"`
	DB    string `name:"db" env:"NHKEASY_DB" help:"Article library path (default ~/.nhkeasy/nhkeasy.db)"`

	Parse    ParseCmd    `cmd:"" help:"Parse an article page and print its text"`
	Glossary GlossaryCmd `cmd:"" help:"List vocabulary, places, and names of article pages"`
	Save     SaveCmd     `cmd:"" help:"Save article pages to the library"`
	List     ListCmd     `cmd:"" help:"List saved articles"`
	Show     ShowCmd     `cmd:"" help:"Print a saved article"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a saved article"`
	Export   ExportCmd   `cmd:"" help:"Export a saved article as markdown"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File        string `arg:"" optional:"" help:"HTML file (default stdin)"`
	Furigana    bool   `short:"f" help:"Show readings after their words"`
	Vocabulary  bool   `help:"List words that carry a reading"`
	Locations   bool   `help:"List place names"`
	Names       bool   `help:"List personal names"`
	JSON        bool   `name:"json" help:"Print the article as JSON"`
	Concurrency int    `short:"c" default:"1" help:"Paragraphs classified at once"`
}

// GlossaryCmd is the "glossary" subcommand.
type GlossaryCmd struct {
	Files  []string `arg:"" optional:"" help:"HTML files (default stdin)"`
	Unique bool     `short:"u" help:"List each entry once across all files. Uses a Bloom filter, so about 1 in 100000 distinct entries may be dropped as a repeat."`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Files       []string `arg:"" optional:"" help:"HTML files (default stdin)"`
	Concurrency int      `short:"c" default:"4" help:"Files parsed at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" help:"Maximum number of articles to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID       string `arg:"" help:"Article ID"`
	Furigana bool   `short:"f" help:"Show readings after their words"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID  string `arg:"" help:"Article ID"`
	Dir string `short:"d" default:"." help:"Output directory"`
}
