// Package goquery prepares rendered result pages for markdown conversion.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/junkyard"
)

// Ensure Cleaner implements junkyard.Cleaner at compile time.
var _ junkyard.Cleaner = (*Cleaner)(nil)

// DefaultRemoveSelectors are the elements stripped before conversion.
// Store headings and the results table live in the page body and are kept.
var DefaultRemoveSelectors = []string{
	"script",
	"style",
	"noscript",
	"iframe",
	"svg",
	"nav",
	"footer",
	"form",
}

// Cleaner strips page chrome from result pages using CSS selectors.
type Cleaner struct {
	selectors []string
}

// NewCleaner creates a Cleaner that removes the given selectors.
// Uses DefaultRemoveSelectors when none are given.
func NewCleaner(selectors ...string) *Cleaner {
	if len(selectors) == 0 {
		selectors = DefaultRemoveSelectors
	}
	return &Cleaner{selectors: selectors}
}

// Clean returns html with the configured elements removed.
func (c *Cleaner) Clean(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", junkyard.Errorf(junkyard.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", junkyard.Errorf(junkyard.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range c.selectors {
		doc.Find(selector).Remove()
	}

	out, err := doc.Html()
	if err != nil {
		return "", err
	}
	return out, nil
}
