// Package picknpull builds Pick-n-Pull inventory search URLs and resolves
// make and model names to the identifiers those URLs require.
package picknpull

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/junkyard"
)

// BaseURL is the Pick-n-Pull vehicle search page.
const BaseURL = "https://www.picknpull.com/check-inventory/vehicle-search"

// SearchURL builds the search URL for a make/model, location, and year range.
func SearchURL(makeID, modelID uint, zip string, distance, yearMin, yearMax uint) string {
	return fmt.Sprintf("%s?make=%d&model=%d&distance=%d&zip=%s&year=%d-%d",
		BaseURL, makeID, modelID, distance, url.QueryEscape(zip), yearMin, yearMax)
}

// Make is a supported make and its models.
type Make struct {
	ID     uint
	Name   string
	Models []Model
}

// Model is a supported model.
type Model struct {
	ID   uint
	Name string
}

// DefaultMakes are the makes known to be supported.
var DefaultMakes = []Make{
	{ID: 226, Name: "Subaru", Models: []Model{
		{ID: 4154, Name: "Impreza Wagon"},
	}},
}

// Ensure Catalog implements junkyard.Catalog at compile time.
var _ junkyard.Catalog = (*Catalog)(nil)

// Catalog resolves make and model names case-insensitively.
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	makes map[string]Make
}

// NewCatalog creates a Catalog from makes. Uses DefaultMakes when none are given.
func NewCatalog(makes ...Make) *Catalog {
	if len(makes) == 0 {
		makes = DefaultMakes
	}
	c := &Catalog{makes: make(map[string]Make, len(makes))}
	for _, m := range makes {
		c.makes[normalize(m.Name)] = m
	}
	return c
}

// Makes returns the supported make names, sorted.
func (c *Catalog) Makes() []string {
	names := make([]string, 0, len(c.makes))
	for _, m := range c.makes {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// Models returns the supported model names for a make, sorted.
func (c *Catalog) Models(makeName string) []string {
	m, ok := c.makes[normalize(makeName)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m.Models))
	for _, model := range m.Models {
		names = append(names, model.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a make and model to their identifiers.
func (c *Catalog) Lookup(makeName, modelName string) (uint, uint, error) {
	m, ok := c.makes[normalize(makeName)]
	if !ok {
		return 0, 0, junkyard.Errorf(junkyard.ENOTFOUND, "Unsupported make: %s", makeName)
	}
	for _, model := range m.Models {
		if normalize(model.Name) == normalize(modelName) {
			return m.ID, model.ID, nil
		}
	}
	return 0, 0, junkyard.Errorf(junkyard.ENOTFOUND, "Unsupported model %s for make %s", modelName, m.Name)
}

// SearchURL resolves the request's make and model and builds its search URL.
func (c *Catalog) SearchURL(req *junkyard.SearchRequest) (string, error) {
	makeID, modelID, err := c.Lookup(req.Make, req.Model)
	if err != nil {
		return "", err
	}
	return SearchURL(makeID, modelID, req.ZipCode, req.SearchDistance(), req.YearMin, req.YearMax), nil
}

// ParseMakes parses "Name=ID:Model=ID,Model=ID" definitions, one per make,
// for extending the catalog from configuration.
func ParseMakes(defs []string) ([]Make, error) {
	makes := make([]Make, 0, len(defs))
	for _, def := range defs {
		head, tail, ok := strings.Cut(def, ":")
		if !ok {
			return nil, junkyard.Errorf(junkyard.EINVALID, "invalid make definition %q: missing models", def)
		}
		name, id, err := parsePair(head)
		if err != nil {
			return nil, junkyard.Errorf(junkyard.EINVALID, "invalid make definition %q: %v", def, err)
		}
		m := Make{ID: id, Name: name}
		for _, part := range strings.Split(tail, ",") {
			modelName, modelID, err := parsePair(part)
			if err != nil {
				return nil, junkyard.Errorf(junkyard.EINVALID, "invalid make definition %q: %v", def, err)
			}
			m.Models = append(m.Models, Model{ID: modelID, Name: modelName})
		}
		makes = append(makes, m)
	}
	return makes, nil
}

func parsePair(s string) (string, uint, error) {
	name, rawID, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("expected Name=ID, got %q", s)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(rawID), 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid ID in %q", s)
	}
	return name, uint(id), nil
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
