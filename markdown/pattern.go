// Package markdown extracts inventory records from the markdown rendering
// of a provider search results page.
package markdown

import (
	"iter"
	"regexp"
)

// Pattern matches a regular expression with named capture groups against text.
type Pattern struct {
	re     *regexp.Regexp
	groups map[string]int
}

// MustCompile compiles expr into a Pattern. It panics if expr is invalid.
// Groups are addressed by name; unnamed groups are not retrievable.
func MustCompile(expr string) *Pattern {
	re := regexp.MustCompile(expr)
	groups := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}
	return &Pattern{re: re, groups: groups}
}

// Groups returns the number of named groups in the pattern.
func (p *Pattern) Groups() int {
	return len(p.groups)
}

// All returns the non-overlapping matches of the pattern in text,
// scanning left to right.
func (p *Pattern) All(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if !yield(Match{text: text, loc: loc, groups: p.groups}) {
				return
			}
		}
	}
}

// First returns the leftmost match of the pattern in text.
func (p *Pattern) First(text string) (Match, bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return Match{text: text, loc: loc, groups: p.groups}, true
}

// Match is a single match of a Pattern.
type Match struct {
	text   string
	loc    []int
	groups map[string]int
}

// Text returns the full text of the match.
func (m Match) Text() string {
	if m.loc == nil {
		return ""
	}
	return m.text[m.loc[0]:m.loc[1]]
}

// Get returns the raw text captured by the named group.
// Returns "" if the group does not exist or did not participate in the match.
func (m Match) Get(name string) string {
	i, ok := m.groups[name]
	if !ok {
		return ""
	}
	start, end := m.loc[2*i], m.loc[2*i+1]
	if start < 0 {
		return ""
	}
	return m.text[start:end]
}
