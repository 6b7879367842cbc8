package mock

import "github.com/fwojciec/junkyard"

var _ junkyard.InventoryParser = (*InventoryParser)(nil)

// InventoryParser is a mock implementation of junkyard.InventoryParser.
type InventoryParser struct {
	ParseFn func(text string, sourceURL string) []*junkyard.InventoryRecord
}

func (p *InventoryParser) Parse(text string, sourceURL string) []*junkyard.InventoryRecord {
	return p.ParseFn(text, sourceURL)
}
