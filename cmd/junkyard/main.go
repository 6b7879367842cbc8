package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/junkyard"
	"github.com/fwojciec/junkyard/fs"
	"github.com/fwojciec/junkyard/goquery"
	"github.com/fwojciec/junkyard/htmltomarkdown"
	jyhttp "github.com/fwojciec/junkyard/http"
	"github.com/fwojciec/junkyard/markdown"
	"github.com/fwojciec/junkyard/picknpull"
	"github.com/fwojciec/junkyard/search"
	jyslog "github.com/fwojciec/junkyard/slog"
	"github.com/fwojciec/junkyard/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
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
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("junkyard"),
		kong.Description("Track salvage-yard vehicle inventory."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db_path": m.DBPath, "firecrawl_url": jyhttp.DefaultBaseURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'junkyard --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	makes, err := picknpull.ParseMakes(cli.Catalog)
	if err != nil {
		return err
	}
	deps.Catalog = picknpull.NewCatalog(append(append([]picknpull.Make{}, picknpull.DefaultMakes...), makes...)...)
	deps.Parser = jyslog.NewLoggingParser(markdown.NewParser(markdown.WithLogger(deps.Logger)), deps.Logger)

	if cmd == "serve" || cmd == "search" || cmd == "history" || cmd == "runs" {
		if err := m.openDB(cli.DB, deps); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JUNKYARD_DB to use a different database path\n")
			return err
		}
		defer m.Close()
	}

	if cmd == "serve" || cmd == "search" {
		if cli.FirecrawlKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://firecrawl.dev and set FIRECRAWL_API_KEY")
			return fmt.Errorf("FIRECRAWL_API_KEY not set")
		}

		scraper := jyhttp.NewScraper(cli.FirecrawlKey, jyhttp.WithBaseURL(cli.FirecrawlURL))

		svc := &search.Service{
			Catalog:   deps.Catalog,
			Scraper:   jyslog.NewLoggingScraper(scraper, deps.Logger),
			Parser:    deps.Parser,
			Cleaner:   goquery.NewCleaner(),
			Converter: htmltomarkdown.NewConverter(),
			Vehicles:  deps.Vehicles,
			Runs:      deps.Runs,
			Logger:    deps.Logger,
		}
		if cli.ArchiveDir != "" {
			svc.Archive = fs.NewArchive(cli.ArchiveDir)
		}
		deps.Searcher = svc
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string, deps *Dependencies) error {
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}

	deps.Vehicles = sqlite.NewVehicleService(m.DB)
	deps.Runs = sqlite.NewSearchRunService(m.DB)
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "junkyard.db"
	}
	return filepath.Join(home, ".junkyard", "junkyard.db")
}

// searchAll runs req for its own zip code and every extra zip.
func searchAll(deps *Dependencies, req *junkyard.SearchRequest, zips []string) ([]*junkyard.SearchResponse, error) {
	if len(zips) == 0 {
		resp, err := deps.Searcher.Search(deps.Ctx, req)
		if err != nil {
			return nil, err
		}
		return []*junkyard.SearchResponse{resp}, nil
	}
	return deps.Searcher.SearchMany(deps.Ctx, req, append([]string{req.ZipCode}, zips...))
}
