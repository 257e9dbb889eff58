// Command docview browses a published documentation site from the
// terminal. The site is addressed by its index artifact, served over HTTP
// or read from a local directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/fs"
	"github.com/fwojciec/docview/glamour"
	"github.com/fwojciec/docview/goldmark"
	"github.com/fwojciec/docview/goquery"
	docviewhttp "github.com/fwojciec/docview/http"
	"github.com/fwojciec/docview/load"
	"github.com/fwojciec/docview/nav"
	docviewslog "github.com/fwojciec/docview/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Documentation source: a base URL or a local directory holding the
	// index artifact. Set before calling Run().
	Source string

	// Session for end-to-end testing.
	Session *nav.Session
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Source: defaultSource(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Session != nil {
		return m.Session.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docview"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docview --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	fetcher, indexLoader := newSource(m.Source, logger)
	defer fetcher.Close()

	m.Session = nav.NewSession(indexLoader, func(idx *docview.Index) docview.DocumentLoader {
		return docviewslog.NewDocumentLoader(load.NewLoader(fetcher, idx), logger)
	}, nav.WithLogger(logger))
	if err := m.Session.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCVIEW_SOURCE to the site URL or docs directory\n")
		return fmt.Errorf("failed to load documentation index from %q: %w", m.Source, err)
	}
	defer m.Close()

	terminal, err := glamour.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	deps.Session = m.Session
	deps.Terminal = terminal
	deps.HTML = goldmark.NewRenderer()
	deps.Outline = goquery.NewOutlineBuilder()

	return kongCtx.Run(deps)
}

// newSource wires the fetcher and index loader for a source, which is
// either a base URL or a local directory.
func newSource(source string, logger *slog.Logger) (docview.Fetcher, docview.IndexLoader) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetcher := docviewslog.NewFetcher(docviewhttp.NewFetcher(source), logger)
		return fetcher, docviewhttp.NewIndexLoader(fetcher, "")
	}
	fetcher := docviewslog.NewFetcher(fs.NewFetcher(source), logger)
	return fetcher, fs.NewIndexLoader(source, "")
}

func defaultSource() string {
	if source := os.Getenv("DOCVIEW_SOURCE"); source != "" {
		return source
	}
	return "./docs"
}

func logLevel() slog.Level {
	if os.Getenv("DOCVIEW_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
