package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/junkyard"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	distance := c.Distance
	req := &junkyard.SearchRequest{
		Make:     c.Make,
		Model:    c.Model,
		YearMin:  c.YearMin,
		YearMax:  c.YearMax,
		ZipCode:  c.Zip,
		Distance: &distance,
	}

	responses, err := searchAll(deps, req, c.Zips)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", junkyard.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if len(responses) == 1 {
			return enc.Encode(responses[0])
		}
		return enc.Encode(responses)
	}

	for _, resp := range responses {
		fmt.Fprintf(deps.Stdout, "Found %d vehicles near %s\n", resp.TotalFound, resp.SearchParams.ZipCode)
		printRecords(deps.Stdout, resp.Vehicles)
	}
	return nil
}

// printRecords writes one line per record.
func printRecords(w io.Writer, records []*junkyard.InventoryRecord) {
	for _, r := range records {
		fmt.Fprintf(w, "  %s %s %s  %s  added %s\n",
			formatYear(r.Year), r.Make, r.Model, formatLocation(r.Location), r.AddedDate.Format("2006-01-02"))
	}
}

func formatYear(year *uint) string {
	if year == nil {
		return "????"
	}
	return fmt.Sprintf("%d", *year)
}

func formatLocation(location *string) string {
	if location == nil {
		return junkyard.UnknownLocation
	}
	return *location
}
