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

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	req := &junkyard.SearchRequest{Make: "Subaru", Model: "Impreza Wagon", YearMin: 2000, YearMax: 2006, ZipCode: "84104"}

	t.Run("logs search with found count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, req *junkyard.SearchRequest) (*junkyard.SearchResponse, error) {
				return &junkyard.SearchResponse{Success: true, TotalFound: 3}, nil
			},
		}

		resp, err := jyslog.NewLoggingSearcher(inner, logger).Search(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalFound)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "make=Subaru")
		assert.Contains(t, output, "model=\"Impreza Wagon\"")
		assert.Contains(t, output, "zip=84104")
		assert.Contains(t, output, "found=3")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, req *junkyard.SearchRequest) (*junkyard.SearchResponse, error) {
				return nil, errors.New("scrape failed")
			},
		}

		_, err := jyslog.NewLoggingSearcher(inner, logger).Search(context.Background(), req)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"scrape failed\"")
	})
}
