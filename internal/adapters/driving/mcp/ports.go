package mcp

import (
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers ranked queries.
	Search driving.SearchService

	// Fetch retrieves full documents by ID.
	Fetch driving.FetchService

	// Catalog lists the stored corpus. Optional; without it the
	// document-list resource reports an empty corpus.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Fetch == nil {
		return ErrMissingFetchService
	}
	// Catalog is optional
	return nil
}
