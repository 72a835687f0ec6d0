// Package source implements the scraping collaborator boundary: fetching
// listing pages from job boards and turning them into raw job tuples. The
// annotation core never depends on this package; it only consumes the
// RawJob tuples a Source emits.
package source

import (
	"context"
	"fmt"

	"github.com/wingkam/jobradar/internal/types"
)

// Source is one job board: it can list postings for a search keyword and
// fetch the full description for a single posting.
type Source interface {
	Name() string
	Search(ctx context.Context, keyword string, page int) ([]types.RawJob, error)
	FetchDetail(ctx context.Context, job *types.RawJob) error
}

// FetchError wraps a failure to retrieve or parse a page from a board.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
