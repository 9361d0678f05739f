package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/refdoc"
	"github.com/fwojciec/refdoc/crawl"
	"github.com/fwojciec/refdoc/fs"
	"github.com/fwojciec/refdoc/goquery"
	"github.com/fwojciec/refdoc/htmltomarkdown"
	refhttp "github.com/fwojciec/refdoc/http"
	refslog "github.com/fwojciec/refdoc/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Directory that relative text output paths are resolved against.
	// Defaults to the directory of the running executable.
	ExecutableDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ExecutableDir: executableDir(),
	}
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
		kong.Name("refdoc"),
		kong.Description("Scrape the cTrader Automate API reference into local files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'refdoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Verbose {
		deps.Logger = slog.New(charmlog.NewWithOptions(stderr, charmlog.Options{
			ReportTimestamp: true,
			Level:           charmlog.DebugLevel,
		}))
	}

	var fetcher refdoc.Fetcher = refhttp.NewFetcher(refhttp.WithTimeout(cli.Timeout))
	var links refdoc.LinkDiscoverer = goquery.NewLinkDiscoverer()
	if deps.Logger != nil {
		fetcher = refslog.NewLoggingFetcher(fetcher, deps.Logger)
		links = refslog.NewLoggingLinkDiscoverer(links, deps.Logger)
	}
	defer fetcher.Close()

	deps.Crawler = &crawl.Crawler{
		Fetcher:     fetcher,
		Links:       links,
		Details:     goquery.NewDetailExtractor(),
		Text:        goquery.NewTextExtractor(),
		BaseURL:     cli.BaseURL,
		ListingPath: cli.ListingPath,
		Exclude:     cli.Exclude,
	}

	switch kongCtx.Command() {
	case "extract":
		w := &fs.DatasetWriter{
			HTMLPath: cli.Extract.HTML,
			JSONPath: cli.Extract.JSON,
		}
		deps.Artifacts = []string{w.HTMLPath, w.JSONPath}
		if cli.Extract.Markdown != "" {
			w.MarkdownPath = cli.Extract.Markdown
			w.Converter = htmltomarkdown.NewConverter()
			deps.Artifacts = append(deps.Artifacts, w.MarkdownPath)
		}
		deps.DatasetWriter = w
		if deps.Logger != nil {
			deps.DatasetWriter = refslog.NewLoggingDatasetWriter(w, deps.Logger)
		}
	case "text":
		path := resolveOutputPath(m.ExecutableDir, cli.Text.Output)
		deps.Artifacts = []string{path}
		deps.TextWriter = fs.NewTextWriter(path)
		if deps.Logger != nil {
			deps.TextWriter = refslog.NewLoggingTextWriter(deps.TextWriter, deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

// resolveOutputPath joins a relative path onto dir. Absolute paths and an
// empty dir leave path unchanged.
func resolveOutputPath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}
