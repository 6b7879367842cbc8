// Package http provides the Firecrawl scraping client and the HTTP API
// that serves inventory searches.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
	"golang.org/x/time/rate"
)

// Scraper defaults.
const (
	DefaultBaseURL       = "https://api.firecrawl.dev"
	DefaultScrapeTimeout = 60 * time.Second
	DefaultWaitFor       = 2 * time.Second
	DefaultRateLimit     = 1.0
)

// Ensure Scraper implements junkyard.Scraper at compile time.
var _ junkyard.Scraper = (*Scraper)(nil)

// Scraper renders pages through the Firecrawl scrape API.
type Scraper struct {
	apiKey  string
	baseURL string
	client  *http.Client
	timeout time.Duration
	waitFor time.Duration
	limiter *rate.Limiter
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithBaseURL sets the API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(s *Scraper) {
		s.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the timeout for scrape requests.
// Defaults to DefaultScrapeTimeout (60s) since pages are rendered remotely.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// WithWaitFor sets how long the service waits for page JavaScript before capture.
func WithWaitFor(d time.Duration) Option {
	return func(s *Scraper) {
		s.waitFor = d
	}
}

// WithRateLimit sets the maximum requests per second sent to the service.
// A limit <= 0 disables rate limiting.
func WithRateLimit(rps float64) Option {
	return func(s *Scraper) {
		if rps <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithHTTPClient sets the underlying HTTP client. Its timeout is left untouched.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		s.client = c
	}
}

// NewScraper creates a new Scraper authenticating with apiKey.
func NewScraper(apiKey string, opts ...Option) *Scraper {
	s := &Scraper{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultScrapeTimeout,
		waitFor: DefaultWaitFor,
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
	WaitFor int64    `json:"waitFor"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    *struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
		Metadata struct {
			StatusCode int    `json:"statusCode"`
			SourceURL  string `json:"sourceURL"`
		} `json:"metadata"`
	} `json:"data"`
}

// Scrape renders the page at url and returns its markdown and HTML.
func (s *Scraper) Scrape(ctx context.Context, url string) (*junkyard.ScrapeResult, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, junkyard.Errorf(junkyard.ETRANSPORT, "Request failed: %v", err)
		}
	}

	body, err := json.Marshal(scrapeRequest{
		URL:     url,
		Formats: []string{"markdown", "html"},
		WaitFor: s.waitFor.Milliseconds(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, junkyard.Errorf(junkyard.ETRANSPORT, "Request failed: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, junkyard.Errorf(junkyard.ETRANSPORT, "Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return nil, junkyard.Errorf(junkyard.EUPSTREAM, "API returned error status: %d, message: %s",
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var envelope scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, junkyard.Errorf(junkyard.ETRANSPORT, "Request failed: invalid response body: %v", err)
	}

	if !envelope.Success {
		return nil, junkyard.Errorf(junkyard.EUPSTREAM, "API error: %s", envelope.Error)
	}
	if envelope.Data == nil {
		return nil, junkyard.Errorf(junkyard.EUPSTREAM, "API error: response contained no data")
	}

	result := &junkyard.ScrapeResult{
		URL:        envelope.Data.Metadata.SourceURL,
		StatusCode: envelope.Data.Metadata.StatusCode,
		Markdown:   envelope.Data.Markdown,
		HTML:       envelope.Data.HTML,
	}
	if result.URL == "" {
		result.URL = url
	}

	return result, nil
}
