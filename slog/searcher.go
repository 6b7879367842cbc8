package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/junkyard"
)

// Ensure LoggingSearcher implements junkyard.Searcher.
var _ junkyard.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   junkyard.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next junkyard.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, req *junkyard.SearchRequest) (resp *junkyard.SearchResponse, err error) {
	defer func(begin time.Time) {
		var found int
		if resp != nil {
			found = resp.TotalFound
		}
		s.logger.Info("search",
			"make", req.Make,
			"model", req.Model,
			"zip", req.ZipCode,
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, req)
}
