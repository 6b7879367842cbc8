package mock

import "github.com/fwojciec/junkyard"

var _ junkyard.Converter = (*Converter)(nil)

// Converter is a mock implementation of junkyard.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ junkyard.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of junkyard.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
