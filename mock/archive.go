package mock

import (
	"context"

	"github.com/fwojciec/junkyard"
)

var _ junkyard.PageArchive = (*PageArchive)(nil)

// PageArchive is a mock implementation of junkyard.PageArchive.
type PageArchive struct {
	SavePageFn func(ctx context.Context, page *junkyard.Page) error
}

func (a *PageArchive) SavePage(ctx context.Context, page *junkyard.Page) error {
	return a.SavePageFn(ctx, page)
}
