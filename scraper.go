package junkyard

import (
	"context"
	"time"
)

// ScrapeResult holds the page content returned by the scraping service.
type ScrapeResult struct {
	URL        string
	StatusCode int

	// Markdown is the page rendered to markdown by the service.
	// May be empty when only HTML was returned.
	Markdown string

	// HTML is the rendered page HTML.
	HTML string
}

// Scraper retrieves rendered pages through a third-party scraping service.
type Scraper interface {
	// Scrape renders the page at url and returns its content.
	// Returns ETRANSPORT if the request could not be completed and
	// EUPSTREAM if the service reported an error.
	Scrape(ctx context.Context, url string) (*ScrapeResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Cleaner removes page chrome from HTML before conversion.
type Cleaner interface {
	// Clean returns html without scripts, styles, and navigation elements.
	Clean(html string) (string, error)
}

// Page is a scraped results page kept for later reprocessing.
type Page struct {
	URL         string
	ContentHash string
	ScrapedAt   time.Time
	Content     string
}

// PageArchive stores scraped pages.
type PageArchive interface {
	// SavePage stores page. Saving a page with a known content hash
	// replaces the stored copy.
	SavePage(ctx context.Context, page *Page) error
}
