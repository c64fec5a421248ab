package services

import (
	"context"
	"sort"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the stored corpus for browsing.
type CatalogService struct {
	docStore driven.DocumentStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(docStore driven.DocumentStore) *CatalogService {
	return &CatalogService{docStore: docStore}
}

// List returns all stored documents, ordered by ID for stable output.
func (s *CatalogService) List(ctx context.Context) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrStoreUnavailable
	}
	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

// Count returns the number of stored documents.
func (s *CatalogService) Count(ctx context.Context) (int, error) {
	if s.docStore == nil {
		return 0, domain.ErrStoreUnavailable
	}
	return s.docStore.Count(ctx)
}
