package driven

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// Connector fetches documents from a corpus source.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// Validate checks if the connector is properly configured.
	// For filesystem, this checks the path exists and is readable.
	// Returns nil if ready to load, error describing the problem otherwise.
	Validate(ctx context.Context) error

	// Load fetches all documents from the source.
	// Returns channels for documents and errors. Both are closed when
	// the load completes or the context is cancelled.
	Load(ctx context.Context) (<-chan domain.Document, <-chan error)

	// Watch listens for changes to the source and emits documents that
	// need re-ingestion. Returns domain.ErrInvalidInput if the connector
	// does not support watching.
	Watch(ctx context.Context) (<-chan domain.Document, error)

	// Close releases resources.
	Close() error
}
