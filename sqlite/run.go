package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ junkyard.SearchRunService = (*SearchRunService)(nil)

// SearchRunService implements junkyard.SearchRunService using SQLite.
type SearchRunService struct {
	db *DB
}

// NewSearchRunService creates a new SearchRunService.
func NewSearchRunService(db *DB) *SearchRunService {
	return &SearchRunService{db: db}
}

// CreateSearchRun records a new search run.
func (s *SearchRunService) CreateSearchRun(ctx context.Context, run *junkyard.SearchRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.SearchedAt = s.db.now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_runs (id, url, content_hash, total_found, searched_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.URL, run.ContentHash, run.TotalFound, run.SearchedAt.Format(time.RFC3339))

	return err
}

// FindSearchRuns retrieves runs matching the filter, newest first.
func (s *SearchRunService) FindSearchRuns(ctx context.Context, filter junkyard.SearchRunFilter) ([]*junkyard.SearchRun, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, total_found, searched_at FROM search_runs WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY searched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*junkyard.SearchRun
	for rows.Next() {
		var run junkyard.SearchRun
		var searchedAt string

		if err := rows.Scan(&run.ID, &run.URL, &run.ContentHash, &run.TotalFound, &searchedAt); err != nil {
			return nil, err
		}

		if run.SearchedAt, err = parseRFC3339(searchedAt, "searched_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
