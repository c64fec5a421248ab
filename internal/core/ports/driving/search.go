package driving

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search runs a relevance-ranked query across all stored documents.
	//
	// A query that is empty after trimming whitespace returns an empty
	// result set and a nil error: "no input" is not "malformed input".
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
