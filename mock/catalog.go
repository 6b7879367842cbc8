package mock

import "github.com/fwojciec/junkyard"

var _ junkyard.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of junkyard.Catalog.
type Catalog struct {
	MakesFn     func() []string
	ModelsFn    func(makeName string) []string
	LookupFn    func(makeName, modelName string) (uint, uint, error)
	SearchURLFn func(req *junkyard.SearchRequest) (string, error)
}

func (c *Catalog) Makes() []string {
	return c.MakesFn()
}

func (c *Catalog) Models(makeName string) []string {
	return c.ModelsFn(makeName)
}

func (c *Catalog) Lookup(makeName, modelName string) (uint, uint, error) {
	return c.LookupFn(makeName, modelName)
}

func (c *Catalog) SearchURL(req *junkyard.SearchRequest) (string, error) {
	return c.SearchURLFn(req)
}
