package driven

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// DocumentStore persists canonical documents keyed by stable identifier.
// Implementations must be safe for concurrent use: the query and fetch
// paths read from the store while ingestion may be writing.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// GetDocumentByURI retrieves a document by its source URI.
	// Returns domain.ErrNotFound if no document has that URI.
	GetDocumentByURI(ctx context.Context, uri string) (*domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all stored documents.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)
}
