package driving

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// CatalogService exposes the stored corpus for browsing.
type CatalogService interface {
	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
