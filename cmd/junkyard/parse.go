package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}

	records := deps.Parser.Parse(string(data), c.SourceURL)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	fmt.Fprintf(deps.Stdout, "Found %d vehicles\n", len(records))
	printRecords(deps.Stdout, records)
	return nil
}
