package mcp

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	_ domain.SearchOptions,
) ([]domain.SearchResult, error) {
	return m.results, m.err
}

// mockFetchService is a mock implementation of driving.FetchService.
type mockFetchService struct {
	document *domain.Document
	err      error
}

func (m *mockFetchService) Fetch(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	documents []domain.Document
	count     int
	err       error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	return m.count, m.err
}
