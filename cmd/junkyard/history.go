package main

import (
	"fmt"

	"github.com/fwojciec/junkyard"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := junkyard.VehicleFilter{Limit: c.Limit}
	if c.Make != "" {
		filter.Make = &c.Make
	}
	if c.Model != "" {
		filter.Model = &c.Model
	}

	vehicles, err := deps.Vehicles.FindVehicles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", junkyard.ErrorMessage(err))
		return err
	}

	if len(vehicles) == 0 {
		fmt.Fprintln(deps.Stdout, "No vehicles tracked yet. Use 'junkyard search' to record some.")
		return nil
	}

	for _, v := range vehicles {
		fmt.Fprintf(deps.Stdout, "%s  %s %s %s  %s  first seen %s  last seen %s\n",
			v.ID, formatYear(v.Year), v.Make, v.Model, formatLocation(v.Location),
			v.FirstSeen.Format("2006-01-02"), v.LastSeen.Format("2006-01-02"))
	}
	return nil
}

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindSearchRuns(deps.Ctx, junkyard.SearchRunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", junkyard.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No searches recorded yet.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %d found  %s  %s\n",
			r.SearchedAt.Format("2006-01-02 15:04"), r.TotalFound, r.ContentHash, r.URL)
	}
	return nil
}
