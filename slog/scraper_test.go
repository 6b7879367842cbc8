package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/junkyard"
	"github.com/fwojciec/junkyard/mock"
	jyslog "github.com/fwojciec/junkyard/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("logs scrape with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*junkyard.ScrapeResult, error) {
				return &junkyard.ScrapeResult{URL: url, Markdown: "## Matching Vehicles"}, nil
			},
		}

		scraper := jyslog.NewLoggingScraper(inner, logger)
		result, err := scraper.Scrape(context.Background(), "https://example.com/search")

		require.NoError(t, err)
		assert.Equal(t, "## Matching Vehicles", result.Markdown)
		output := buf.String()
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://example.com/search")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeFn: func(ctx context.Context, url string) (*junkyard.ScrapeResult, error) {
				return nil, errors.New("network error")
			},
		}

		scraper := jyslog.NewLoggingScraper(inner, logger)
		_, err := scraper.Scrape(context.Background(), "https://example.com/search")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
