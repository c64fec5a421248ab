package driving

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// FetchService retrieves complete documents by identifier.
type FetchService interface {
	// Fetch returns the full document for the given ID.
	//
	// An ID that is empty after trimming returns domain.ErrInvalidInput.
	// An unknown ID returns domain.ErrNotFound - documents are never
	// fabricated for unrecognised identifiers.
	Fetch(ctx context.Context, id string) (*domain.Document, error)
}
