package markdown

import (
	"strings"
	"time"
)

var (
	// facilityPattern matches store headings such as "[Pick-n-Pull - Newark](...)".
	facilityPattern = MustCompile(`Pick-n-Pull - (?P<facility>[^\]]+)`)

	// addressPattern matches "1234 Some Rd • City, ST [" address lines.
	addressPattern = MustCompile(`(?P<address>\d+\s+[^•]+)•\s*(?P<cityState>[^\[]+)`)
)

// setDateLayouts are tried in order. The month and day of the first layout
// accept one or two digits.
var setDateLayouts = []string{
	"1/2/2006",
	"2006-01-02",
}

// ExtractLocation recovers a facility name or street address from text.
// A facility name is preferred over an address. Returns false if neither is found.
func ExtractLocation(text string) (string, bool) {
	if m, ok := facilityPattern.First(text); ok {
		return strings.TrimSpace(m.Get("facility")), true
	}

	if m, ok := addressPattern.First(text); ok {
		address := strings.TrimSpace(m.Get("address"))
		cityState := strings.TrimSpace(m.Get("cityState"))
		return address + ", " + cityState, true
	}

	return "", false
}

// ParseSetDate parses a set date as MM/DD/YYYY or YYYY-MM-DD at midnight UTC.
// Returns false if s matches neither format.
func ParseSetDate(s string) (time.Time, bool) {
	for _, layout := range setDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
