package junkyard

import (
	"context"
	"time"
)

// DefaultDistance is the search radius in miles used when none is given.
const DefaultDistance uint = 50

// SearchRequest describes an inventory search.
type SearchRequest struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	YearMin  uint   `json:"year_min"`
	YearMax  uint   `json:"year_max"`
	ZipCode  string `json:"zip_code"`
	Distance *uint  `json:"distance,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *SearchRequest) Validate() error {
	if r.Make == "" {
		return Errorf(EINVALID, "Missing 'make' parameter")
	}
	if r.Model == "" {
		return Errorf(EINVALID, "Missing 'model' parameter")
	}
	if r.ZipCode == "" {
		return Errorf(EINVALID, "Missing 'zip_code' parameter")
	}
	if r.YearMin > r.YearMax {
		return Errorf(EINVALID, "year_min cannot be greater than year_max")
	}
	return nil
}

// SearchDistance returns the requested distance or DefaultDistance.
func (r *SearchRequest) SearchDistance() uint {
	if r.Distance == nil {
		return DefaultDistance
	}
	return *r.Distance
}

// SearchResponse is the result of an inventory search.
type SearchResponse struct {
	Success      bool               `json:"success"`
	Vehicles     []*InventoryRecord `json:"vehicles"`
	SearchParams *SearchRequest     `json:"search_params"`
	TotalFound   int                `json:"total_found"`
}

// Searcher performs inventory searches.
type Searcher interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}

// SearchRun records a single scrape-and-parse of a search URL.
type SearchRun struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	ContentHash string    `json:"content_hash"`
	TotalFound  int       `json:"total_found"`
	SearchedAt  time.Time `json:"searched_at"`
}

// Validate returns an error if the run contains invalid fields.
func (r *SearchRun) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "search run URL required")
	}
	return nil
}

// SearchRunService represents a service for recording search runs.
type SearchRunService interface {
	// CreateSearchRun records a run, assigning its ID and timestamp.
	CreateSearchRun(ctx context.Context, run *SearchRun) error

	// FindSearchRuns retrieves runs matching the filter, newest first.
	FindSearchRuns(ctx context.Context, filter SearchRunFilter) ([]*SearchRun, error)
}

// SearchRunFilter represents a filter for FindSearchRuns.
type SearchRunFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
