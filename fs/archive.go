// Package fs provides file-based storage for scraped pages.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/junkyard"
)

// Ensure Archive implements junkyard.PageArchive at compile time.
var _ junkyard.PageArchive = (*Archive)(nil)

// Archive stores scraped pages as markdown files under a base directory,
// grouped by scrape date: baseDir/2006-01-02/{content hash}.md.
// Each file is written to a temporary name and renamed into place.
type Archive struct {
	baseDir string
}

// NewArchive creates a new Archive rooted at baseDir.
func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// PagePath returns the path page is stored at, relative to the archive root.
func PagePath(page *junkyard.Page) string {
	return filepath.Join(page.ScrapedAt.UTC().Format("2006-01-02"), page.ContentHash+".md")
}

// SavePage writes page to the archive.
func (a *Archive) SavePage(ctx context.Context, page *junkyard.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if page.ContentHash == "" {
		return junkyard.Errorf(junkyard.EINVALID, "page content hash required")
	}

	fullPath := filepath.Join(a.baseDir, PagePath(page))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".page-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatPage(page)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fullPath)
}

// FormatPage formats a page with YAML frontmatter.
func FormatPage(page *junkyard.Page) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ncontent_hash: ")
	b.WriteString(page.ContentHash)
	b.WriteString("\nscraped: ")
	b.WriteString(page.ScrapedAt.UTC().Format(time.RFC3339))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	return b.String()
}
