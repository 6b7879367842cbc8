package junkyard

import (
	"context"
	"time"
)

// UnknownLocation is used in place of a facility or address when none
// could be recovered from the page.
const UnknownLocation = "Unknown Location"

// InventoryRecord represents a single vehicle listed in a yard's inventory.
type InventoryRecord struct {
	ID           string    `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         *uint     `json:"year"`
	Location     *string   `json:"location"`
	Availability bool      `json:"availability"`
	AddedDate    time.Time `json:"added_date"`
}

// InventoryParser extracts inventory records from a scraped page.
type InventoryParser interface {
	// Parse returns the records found in text, in document order.
	// Malformed input yields fewer or zero records, never an error.
	Parse(text string, sourceURL string) []*InventoryRecord
}

// Vehicle is an inventory record as tracked across searches.
type Vehicle struct {
	InventoryRecord
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}

// VehicleService represents a service for tracking seen vehicles.
type VehicleService interface {
	// UpsertVehicles inserts new records and refreshes the ones already seen.
	UpsertVehicles(ctx context.Context, records []*InventoryRecord) error

	// FindVehicles retrieves tracked vehicles matching the filter,
	// most recently seen first.
	FindVehicles(ctx context.Context, filter VehicleFilter) ([]*Vehicle, error)
}

// VehicleFilter represents a filter for FindVehicles.
type VehicleFilter struct {
	Make  *string `json:"make"`
	Model *string `json:"model"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
