package markdown

import (
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
)

// field is the outcome of deriving a typed value from captured text.
// OK is false when the text could not be parsed.
type field[T any] struct {
	Value T
	OK    bool
}

func valid[T any](v T) field[T] {
	return field[T]{Value: v, OK: true}
}

// candidate is a matched vehicle entry before it is collapsed to a record.
type candidate struct {
	id      string
	year    string
	make    string
	model   string
	row     string
	setDate string

	parsedYear field[uint]
	addedDate  field[time.Time]
	location   field[string]
}

// newCandidate derives the typed fields from the captured tokens.
func newCandidate(id, year, vehicleMake, model, row, setDate string, location field[string]) *candidate {
	c := &candidate{
		id:       id,
		year:     year,
		make:     vehicleMake,
		model:    model,
		row:      row,
		setDate:  setDate,
		location: location,
	}
	c.parsedYear = parseYear(year)
	if t, ok := ParseSetDate(setDate); ok {
		c.addedDate = valid(t)
	}
	return c
}

// record collapses the candidate into an inventory record.
// now is used for the added date when the set date did not parse.
func (c *candidate) record(now time.Time) *junkyard.InventoryRecord {
	place := junkyard.UnknownLocation
	if c.location.OK {
		place = c.location.Value
	}
	location := "Row " + c.row + ", " + place

	added := now
	if c.addedDate.OK {
		added = c.addedDate.Value
	}

	var year *uint
	if c.parsedYear.OK {
		y := c.parsedYear.Value
		year = &y
	}

	return &junkyard.InventoryRecord{
		ID:           c.id,
		Make:         c.make,
		Model:        c.model,
		Year:         year,
		Location:     &location,
		Availability: true,
		AddedDate:    added,
	}
}

func parseYear(s string) field[uint] {
	if len(s) != 4 {
		return field[uint]{}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return field[uint]{}
	}
	return valid(uint(n))
}

func locationField(text string) field[string] {
	if loc, ok := ExtractLocation(text); ok {
		return valid(loc)
	}
	return field[string]{}
}

// tableID builds the record ID for a table row.
func tableID(year, vehicleMake, model, row string) string {
	return year + "_" +
		underscore(strings.ToLower(vehicleMake)) + "_" +
		underscore(strings.ToLower(model)) + "_" +
		underscore(row)
}

// entryID builds the record ID for a free-text entry. The make is a single token.
func entryID(year, vehicleMake, model, row string) string {
	return year + "_" +
		strings.ToLower(vehicleMake) + "_" +
		underscore(strings.ToLower(model)) + "_" +
		row
}

func underscore(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
