// Package search runs inventory searches end to end: it resolves the provider
// URL, scrapes the results page, extracts records, and records the run.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/junkyard"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of searches SearchMany runs at once.
const DefaultConcurrency = 3

// Ensure Service implements junkyard.Searcher at compile time.
var _ junkyard.Searcher = (*Service)(nil)

// Service orchestrates inventory searches.
// Catalog, Scraper and Parser are required; the rest are optional.
type Service struct {
	Catalog   junkyard.Catalog
	Scraper   junkyard.Scraper
	Parser    junkyard.InventoryParser
	Cleaner   junkyard.Cleaner
	Converter junkyard.Converter
	Vehicles  junkyard.VehicleService
	Runs      junkyard.SearchRunService
	Archive   junkyard.PageArchive
	Logger    *slog.Logger

	Concurrency int
	RetryDelays []time.Duration
}

// Search validates req, scrapes its results page, and returns the vehicles found.
func (s *Service) Search(ctx context.Context, req *junkyard.SearchRequest) (*junkyard.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	url, err := s.Catalog.SearchURL(req)
	if err != nil {
		return nil, err
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	page, err := ScrapeWithRetry(ctx, url, s.Scraper.Scrape, s.logRetry, delays)
	if err != nil {
		return nil, err
	}

	text, err := s.pageText(page)
	if err != nil {
		return nil, err
	}

	vehicles := s.Parser.Parse(text, url)
	if vehicles == nil {
		vehicles = []*junkyard.InventoryRecord{}
	}

	if err := s.record(ctx, url, text, vehicles); err != nil {
		return nil, err
	}

	return &junkyard.SearchResponse{
		Success:      true,
		Vehicles:     vehicles,
		SearchParams: req,
		TotalFound:   len(vehicles),
	}, nil
}

// SearchMany runs req once per zip code concurrently.
// Responses are returned in the order of zips. The first failure cancels
// the remaining searches and is returned.
func (s *Service) SearchMany(ctx context.Context, req *junkyard.SearchRequest, zips []string) ([]*junkyard.SearchResponse, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	responses := make([]*junkyard.SearchResponse, len(zips))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, zip := range zips {
		zipReq := *req
		zipReq.ZipCode = zip
		g.Go(func() error {
			resp, err := s.Search(ctx, &zipReq)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

// pageText returns the markdown for a scraped page, converting HTML when
// the service returned no markdown. Returns "" for an empty page.
func (s *Service) pageText(page *junkyard.ScrapeResult) (string, error) {
	if page.Markdown != "" || page.HTML == "" || s.Converter == nil {
		return page.Markdown, nil
	}

	html := page.HTML
	if s.Cleaner != nil {
		cleaned, err := s.Cleaner.Clean(html)
		if err != nil {
			return "", fmt.Errorf("failed to clean page: %w", err)
		}
		html = cleaned
	}

	text, err := s.Converter.Convert(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert page: %w", err)
	}
	return text, nil
}

// record stores the run, the vehicles seen, and the page text when stores
// are configured. A failure to archive the page is logged and not returned.
func (s *Service) record(ctx context.Context, url, text string, vehicles []*junkyard.InventoryRecord) error {
	run := &junkyard.SearchRun{
		URL:         url,
		ContentHash: hashContent(text),
		TotalFound:  len(vehicles),
	}

	if s.Runs != nil {
		if err := s.Runs.CreateSearchRun(ctx, run); err != nil {
			return fmt.Errorf("failed to record search run: %w", err)
		}
	}

	if s.Archive != nil {
		scrapedAt := run.SearchedAt
		if scrapedAt.IsZero() {
			scrapedAt = time.Now().UTC()
		}
		page := &junkyard.Page{
			URL:         url,
			ContentHash: run.ContentHash,
			ScrapedAt:   scrapedAt,
			Content:     text,
		}
		if err := s.Archive.SavePage(ctx, page); err != nil && s.Logger != nil {
			s.Logger.Warn("archive page failed", "url", url, "err", err)
		}
	}

	if s.Vehicles != nil && len(vehicles) > 0 {
		if err := s.Vehicles.UpsertVehicles(ctx, vehicles); err != nil {
			return fmt.Errorf("failed to store vehicles: %w", err)
		}
	}

	return nil
}

func (s *Service) logRetry(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Warn(msg, args...)
	}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
