package driving

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
)

// IngestService loads documents into the store and indexes.
type IngestService interface {
	// Ingest stores and indexes a single document. Documents without an
	// ID are assigned one; re-ingesting a document with a known URI
	// updates it in place, keeping its identifier stable.
	Ingest(ctx context.Context, doc domain.Document) (*domain.Document, error)

	// IngestAll drains a connector and ingests every document it emits.
	// Returns the number of documents ingested.
	IngestAll(ctx context.Context, connector driven.Connector) (int, error)
}
