// Package slog provides log/slog decorators for junkyard services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/junkyard"
)

// Ensure LoggingScraper implements junkyard.Scraper.
var _ junkyard.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   junkyard.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next junkyard.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the operation.
func (s *LoggingScraper) Scrape(ctx context.Context, url string) (result *junkyard.ScrapeResult, err error) {
	defer func(begin time.Time) {
		var n int
		if result != nil {
			n = len(result.Markdown) + len(result.HTML)
		}
		s.logger.Info("scrape",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}
