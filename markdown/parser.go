package markdown

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
)

// Page markers emitted by the provider's results page.
const (
	NoVehiclesMarker       = "### No Vehicles Found"
	MatchingVehiclesMarker = "## Matching Vehicles"
)

var (
	// rowPattern matches a six-column table row:
	// Photo | Year | Make | Model | Row | Set Date.
	// Only the year column is constrained, which keeps the header row out.
	rowPattern = MustCompile(`\|\s*(?P<photo>[^|]+)\s*\|\s*(?P<year>\d{4})\s*\|\s*(?P<make>[^|]+)\s*\|\s*(?P<model>[^|]+)\s*\|\s*(?P<row>[^|]+)\s*\|\s*(?P<setDate>[^|]+)\s*\|`)

	// entryPattern matches inline listings such as
	// "2005 Subaru Impreza Wagon Row 132 Set: 04/02/2025".
	entryPattern = MustCompile(`(?P<year>\d{4})\s+(?P<make>[A-Za-z]+)\s+(?P<model>[A-Za-z\s]+)\s+Row\s+(?P<row>\d+)\s+Set:\s*(?P<setDate>[0-9/]+)`)
)

// headerYear is the year-column text of the table header row.
const headerYear = "Year"

// Ensure Parser implements junkyard.InventoryParser at compile time.
var _ junkyard.InventoryParser = (*Parser)(nil)

// Parser extracts inventory records from provider result pages.
// A Parser is safe for concurrent use.
type Parser struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the clock used for records whose set date cannot be parsed.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLogger sets the logger for parse diagnostics. Defaults to discarding output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts records from the results table of a page.
// Pages carrying the "no vehicles" marker yield no records. If the table is
// missing or yields nothing, the whole text is parsed with ParseAlternative.
func (p *Parser) Parse(text string, sourceURL string) []*junkyard.InventoryRecord {
	if strings.Contains(text, NoVehiclesMarker) {
		p.logger.Info("no vehicles found", "url", sourceURL)
		return []*junkyard.InventoryRecord{}
	}

	var records []*junkyard.InventoryRecord
	for _, c := range tableCandidates(text) {
		records = append(records, c.record(p.now()))
	}

	if len(records) == 0 {
		return p.ParseAlternative(text, sourceURL)
	}

	return records
}

// ParseAlternative extracts records from inline listings anywhere in text.
// The location found in text is shared by every record.
// sourceURL is accepted for parity with Parse and is not used.
func (p *Parser) ParseAlternative(text string, sourceURL string) []*junkyard.InventoryRecord {
	records := []*junkyard.InventoryRecord{}
	for _, c := range entryCandidates(text) {
		records = append(records, c.record(p.now()))
	}
	return records
}

// tableCandidates returns the candidates from the matching-vehicles table.
// Returns nil if the page has no matching-vehicles section.
func tableCandidates(text string) []*candidate {
	start := strings.Index(text, MatchingVehiclesMarker)
	if start < 0 {
		return nil
	}
	section := text[start:]

	var candidates []*candidate
	for m := range rowPattern.All(section) {
		if m.Get("year") == headerYear {
			continue
		}

		year := strings.TrimSpace(m.Get("year"))
		vehicleMake := strings.TrimSpace(m.Get("make"))
		model := strings.TrimSpace(m.Get("model"))
		row := strings.TrimSpace(m.Get("row"))
		setDate := strings.TrimSpace(m.Get("setDate"))

		if year == headerYear || year == "" || vehicleMake == "" || model == "" {
			continue
		}

		candidates = append(candidates, newCandidate(
			tableID(year, vehicleMake, model, row),
			year, vehicleMake, model, row, setDate,
			locationField(section),
		))
	}

	return candidates
}

// entryCandidates returns the candidates for every inline listing in text.
func entryCandidates(text string) []*candidate {
	var candidates []*candidate
	var location field[string]
	for m := range entryPattern.All(text) {
		if len(candidates) == 0 {
			location = locationField(text)
		}

		year := m.Get("year")
		vehicleMake := m.Get("make")
		model := strings.TrimSpace(m.Get("model"))
		row := m.Get("row")

		candidates = append(candidates, newCandidate(
			entryID(year, vehicleMake, model, row),
			year, vehicleMake, model, row, m.Get("setDate"),
			location,
		))
	}
	return candidates
}
