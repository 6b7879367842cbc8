package search

import (
	"context"
	"time"

	"github.com/fwojciec/junkyard"
)

// ScrapeFunc is the signature for a scrape function.
type ScrapeFunc func(ctx context.Context, url string) (*junkyard.ScrapeResult, error)

// LogFunc is the signature for a logging function.
type LogFunc func(msg string, args ...any)

// DefaultRetryDelays returns the backoff delays for scrape retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// ScrapeWithRetry scrapes url, retrying transport failures after each delay.
// Errors reported by the scraping service are returned immediately.
// The logger function, if provided, is called for each retry attempt.
func ScrapeWithRetry(ctx context.Context, url string, scrape ScrapeFunc, logger LogFunc, delays []time.Duration) (*junkyard.ScrapeResult, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		result, err := scrape(ctx, url)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if junkyard.ErrorCode(err) != junkyard.ETRANSPORT {
			break
		}

		// Don't retry after the last attempt
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("retry scrape", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, junkyard.Errorf(junkyard.ETRANSPORT, "Request failed: %v", ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
