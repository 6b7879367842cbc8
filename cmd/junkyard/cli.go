package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/junkyard"
)

// Searcher runs inventory searches for one or many zip codes.
type Searcher interface {
	junkyard.Searcher
	SearchMany(ctx context.Context, req *junkyard.SearchRequest, zips []string) ([]*junkyard.SearchResponse, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  junkyard.Catalog
	Parser   junkyard.InventoryParser
	Searcher Searcher
	Vehicles junkyard.VehicleService
	Runs     junkyard.SearchRunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string   `name:"db" env:"JUNKYARD_DB" default:"${db_path}" help:"SQLite database path"`
	FirecrawlKey string   `name:"firecrawl-key" env:"FIRECRAWL_API_KEY" help:"Firecrawl API key"`
	FirecrawlURL string   `name:"firecrawl-url" env:"FIRECRAWL_URL" default:"${firecrawl_url}" help:"Firecrawl API base URL"`
	Catalog      []string `name:"catalog" env:"JUNKYARD_CATALOG" sep:";" help:"Extra makes as Name=ID:Model=ID,Model=ID (repeatable)"`
	ArchiveDir   string   `name:"archive-dir" env:"JUNKYARD_ARCHIVE" help:"Directory to save scraped pages in"`
	Verbose      bool     `short:"v" help:"Enable debug logging"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API"`
	Search  SearchCmd  `cmd:"" help:"Search yard inventory"`
	Makes   MakesCmd   `cmd:"" help:"List supported makes"`
	Models  ModelsCmd  `cmd:"" help:"List supported models for a make"`
	History HistoryCmd `cmd:"" help:"List tracked vehicles"`
	Runs    RunsCmd    `cmd:"" help:"List recorded search runs"`
	Parse   ParseCmd   `cmd:"" help:"Extract vehicles from a saved results page"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Host string `default:"0.0.0.0" help:"Address to listen on"`
	Port int    `env:"PORT" default:"3000" help:"Port to listen on"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Make     string   `arg:"" help:"Vehicle make"`
	Model    string   `arg:"" help:"Vehicle model"`
	Zip      string   `short:"z" required:"" help:"Zip code to search around"`
	YearMin  uint     `name:"year-min" required:"" help:"Earliest model year"`
	YearMax  uint     `name:"year-max" required:"" help:"Latest model year"`
	Distance uint     `short:"d" default:"50" help:"Search radius in miles"`
	Zips     []string `help:"Additional zip codes searched concurrently"`
	JSON     bool     `name:"json" help:"Print results as JSON"`
}

// MakesCmd is the "makes" subcommand.
type MakesCmd struct{}

// ModelsCmd is the "models" subcommand.
type ModelsCmd struct {
	Make string `arg:"" help:"Vehicle make"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Make  string `help:"Filter by make"`
	Model string `help:"Filter by model"`
	Limit int    `short:"n" default:"50" help:"Maximum vehicles to list"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum runs to list"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File      string `arg:"" type:"existingfile" help:"Markdown file saved from a results page"`
	SourceURL string `name:"url" help:"Source URL recorded for the page"`
	JSON      bool   `name:"json" help:"Print records as JSON"`
}
