package mock

import (
	"context"

	"github.com/fwojciec/junkyard"
)

var _ junkyard.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of junkyard.Searcher that also
// supports multi-zip searches.
type Searcher struct {
	SearchFn     func(ctx context.Context, req *junkyard.SearchRequest) (*junkyard.SearchResponse, error)
	SearchManyFn func(ctx context.Context, req *junkyard.SearchRequest, zips []string) ([]*junkyard.SearchResponse, error)
}

func (s *Searcher) Search(ctx context.Context, req *junkyard.SearchRequest) (*junkyard.SearchResponse, error) {
	return s.SearchFn(ctx, req)
}

func (s *Searcher) SearchMany(ctx context.Context, req *junkyard.SearchRequest, zips []string) ([]*junkyard.SearchResponse, error) {
	return s.SearchManyFn(ctx, req, zips)
}

var _ junkyard.SearchRunService = (*SearchRunService)(nil)

// SearchRunService is a mock implementation of junkyard.SearchRunService.
type SearchRunService struct {
	CreateSearchRunFn func(ctx context.Context, run *junkyard.SearchRun) error
	FindSearchRunsFn  func(ctx context.Context, filter junkyard.SearchRunFilter) ([]*junkyard.SearchRun, error)
}

func (s *SearchRunService) CreateSearchRun(ctx context.Context, run *junkyard.SearchRun) error {
	return s.CreateSearchRunFn(ctx, run)
}

func (s *SearchRunService) FindSearchRuns(ctx context.Context, filter junkyard.SearchRunFilter) ([]*junkyard.SearchRun, error) {
	return s.FindSearchRunsFn(ctx, filter)
}
