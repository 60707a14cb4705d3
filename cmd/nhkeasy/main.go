package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nhkeasy"
	"github.com/fwojciec/nhkeasy/bloom"
	"github.com/fwojciec/nhkeasy/fs"
	"github.com/fwojciec/nhkeasy/goquery"
	"github.com/fwojciec/nhkeasy/ingest"
	nkslog "github.com/fwojciec/nhkeasy/slog"
	"github.com/fwojciec/nhkeasy/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); the --db flag overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService nhkeasy.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		NewWriter: func(dir string) nhkeasy.ArticleWriter {
			return fs.NewWriter(dir)
		},
		NewDeduper: func() nhkeasy.Deduper {
			return bloom.NewFilter(dedupExpectedEntries, dedupFalsePositiveRate)
		},
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nhkeasy"),
		kong.Description("Read NHK News Web Easy articles with their readings, places, and names."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nhkeasy --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	articleParser := goquery.NewParser()
	if cmd == "parse" && cli.Parse.Concurrency > 0 {
		articleParser.Concurrency = cli.Parse.Concurrency
	}
	deps.Parser = articleParser
	if logger != nil {
		deps.Parser = nkslog.NewLoggingParser(articleParser, logger)
	}

	if !needsLibrary(cmd) {
		return kongCtx.Run(deps)
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NHKEASY_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.Articles = m.ArticleService
	if logger != nil {
		deps.Articles = nkslog.NewLoggingArticleService(m.ArticleService, logger)
	}

	if cmd == "save" {
		deps.Ingester = &ingest.Ingester{
			Parser:      deps.Parser,
			Articles:    deps.Articles,
			Concurrency: cli.Save.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// Glossary de-duplication sizing for --unique.
const (
	dedupExpectedEntries   = 10000
	dedupFalsePositiveRate = 0.00001
)

// needsLibrary reports whether cmd reads or writes the article library.
func needsLibrary(cmd string) bool {
	switch cmd {
	case "save", "list", "show", "delete", "export":
		return true
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nhkeasy.db"
	}
	return filepath.Join(home, ".nhkeasy", "nhkeasy.db")
}
