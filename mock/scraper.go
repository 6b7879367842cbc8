package mock

import (
	"context"

	"github.com/fwojciec/junkyard"
)

var _ junkyard.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of junkyard.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string) (*junkyard.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string) (*junkyard.ScrapeResult, error) {
	return s.ScrapeFn(ctx, url)
}
