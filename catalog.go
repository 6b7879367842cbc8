package junkyard

// Catalog maps human-readable make and model names to the numeric
// identifiers a provider uses in its search URLs.
type Catalog interface {
	// Makes returns the supported make names, sorted.
	Makes() []string

	// Models returns the supported model names for a make, sorted.
	// Returns nil for an unknown make.
	Models(makeName string) []string

	// Lookup resolves a make and model to provider identifiers.
	// Returns ENOTFOUND if either name is not supported.
	Lookup(makeName, modelName string) (makeID, modelID uint, err error)

	// SearchURL resolves the request and builds the provider search URL.
	SearchURL(req *SearchRequest) (string, error)
}
