package driven

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// SearchEngine provides full-text search operations.
// Backed by Bleve for BM25 keyword search.
type SearchEngine interface {
	// Index adds or updates a document in the search index.
	Index(ctx context.Context, doc domain.Document) error

	// Delete removes a document from the search index.
	Delete(ctx context.Context, documentID string) error

	// Search performs a keyword search and returns matching document
	// IDs with relevance scores, best first.
	Search(ctx context.Context, query string, limit int) ([]SearchHit, error)

	// Close releases resources.
	Close() error
}

// SearchHit represents a search result from the engine.
type SearchHit struct {
	// DocumentID is the matched document.
	DocumentID string

	// Score is the relevance score (e.g., BM25).
	Score float64
}
