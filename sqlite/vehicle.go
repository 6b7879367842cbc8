package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
)

// Compile-time interface verification.
var _ junkyard.VehicleService = (*VehicleService)(nil)

// VehicleService implements junkyard.VehicleService using SQLite.
type VehicleService struct {
	db *DB
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(db *DB) *VehicleService {
	return &VehicleService{db: db}
}

// UpsertVehicles inserts new records and refreshes existing ones in a single
// transaction. first_seen is kept for vehicles already tracked.
func (s *VehicleService) UpsertVehicles(ctx context.Context, records []*junkyard.InventoryRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := s.db.now().Format(time.RFC3339)

	for _, r := range records {
		if r.ID == "" {
			return junkyard.Errorf(junkyard.EINVALID, "vehicle ID required")
		}

		var year sql.NullInt64
		if r.Year != nil {
			year = sql.NullInt64{Int64: int64(*r.Year), Valid: true}
		}
		var location sql.NullString
		if r.Location != nil {
			location = sql.NullString{String: *r.Location, Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO vehicles (id, make, model, year, location, availability, added_date, first_seen, last_seen)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				make = excluded.make,
				model = excluded.model,
				year = excluded.year,
				location = excluded.location,
				availability = excluded.availability,
				added_date = excluded.added_date,
				last_seen = excluded.last_seen
		`, r.ID, r.Make, r.Model, year, location, r.Availability,
			r.AddedDate.UTC().Format(time.RFC3339), now, now)
		if err != nil {
			return fmt.Errorf("failed to upsert vehicle %q: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// FindVehicles retrieves tracked vehicles matching the filter, most recently seen first.
// Make and model match case-insensitively.
func (s *VehicleService) FindVehicles(ctx context.Context, filter junkyard.VehicleFilter) ([]*junkyard.Vehicle, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, make, model, year, location, availability, added_date, first_seen, last_seen FROM vehicles WHERE 1=1")

	if filter.Make != nil {
		query.WriteString(" AND make = ? COLLATE NOCASE")
		args = append(args, *filter.Make)
	}
	if filter.Model != nil {
		query.WriteString(" AND model = ? COLLATE NOCASE")
		args = append(args, *filter.Model)
	}

	query.WriteString(" ORDER BY last_seen DESC, id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*junkyard.Vehicle
	for rows.Next() {
		var v junkyard.Vehicle
		var year sql.NullInt64
		var location sql.NullString
		var addedDate, firstSeen, lastSeen string

		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &year, &location, &v.Availability,
			&addedDate, &firstSeen, &lastSeen); err != nil {
			return nil, err
		}

		if year.Valid {
			y := uint(year.Int64)
			v.Year = &y
		}
		if location.Valid {
			loc := location.String
			v.Location = &loc
		}

		if v.AddedDate, err = parseRFC3339(addedDate, "added_date"); err != nil {
			return nil, err
		}
		if v.FirstSeen, err = parseRFC3339(firstSeen, "first_seen"); err != nil {
			return nil, err
		}
		if v.LastSeen, err = parseRFC3339(lastSeen, "last_seen"); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, &v)
	}

	return vehicles, rows.Err()
}
