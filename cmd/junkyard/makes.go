package main

import (
	"fmt"

	"github.com/fwojciec/junkyard"
)

// Run executes the makes command.
func (c *MakesCmd) Run(deps *Dependencies) error {
	for _, name := range deps.Catalog.Makes() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}

// Run executes the models command.
func (c *ModelsCmd) Run(deps *Dependencies) error {
	models := deps.Catalog.Models(c.Make)
	if len(models) == 0 {
		err := junkyard.Errorf(junkyard.ENOTFOUND, "Unsupported make: %s", c.Make)
		fmt.Fprintf(deps.Stderr, "error: %s\n", junkyard.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Run 'junkyard makes' to see supported makes")
		return err
	}

	for _, name := range models {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
