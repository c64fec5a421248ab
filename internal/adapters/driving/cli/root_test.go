package cli

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/logger"
)

// mockSearchService returns a fixed result set.
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

// mockFetchService returns a fixed document.
type mockFetchService struct {
	document *domain.Document
	err      error
}

func (m *mockFetchService) Fetch(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

// mockIngestService records ingested documents.
type mockIngestService struct {
	ingested []domain.Document
	count    int
	err      error
}

func (m *mockIngestService) Ingest(_ context.Context, doc domain.Document) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.ingested = append(m.ingested, doc)
	return &doc, nil
}

func (m *mockIngestService) IngestAll(_ context.Context, _ driven.Connector) (int, error) {
	return m.count, m.err
}

// mockCatalogService returns a fixed document list.
type mockCatalogService struct {
	documents []domain.Document
	err       error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCatalogService) Count(_ context.Context) (int, error) {
	return len(m.documents), m.err
}

// setupTestServices swaps the wired services for mocks and returns a
// cleanup function restoring the previous state.
func setupTestServices() func() {
	oldLog := log
	oldSearch := searchService
	oldFetch := fetchService
	oldIngest := ingestService
	oldCatalog := catalogService
	oldWired := servicesWired

	log = logger.Discard()
	searchService = &mockSearchService{
		results: []domain.SearchResult{
			{
				Document: domain.Document{
					ID:    "doc-1",
					Title: "First Document",
					URI:   "file:///tmp/first.md",
				},
				Snippet: "matched text from the first document",
				Score:   0.9,
			},
		},
	}
	fetchService = &mockFetchService{
		document: &domain.Document{
			ID:      "doc-1",
			Title:   "First Document",
			URI:     "file:///tmp/first.md",
			Content: "Full content of the first document.",
			Metadata: map[string]string{
				"source": "filesystem",
			},
		},
	}
	ingestService = &mockIngestService{count: 3}
	catalogService = &mockCatalogService{
		documents: []domain.Document{
			{ID: "doc-1", Title: "First Document", URI: "file:///tmp/first.md"},
			{ID: "doc-2", Title: "Second Document"},
		},
	}
	servicesWired = true

	return func() {
		log = oldLog
		searchService = oldSearch
		fetchService = oldFetch
		ingestService = oldIngest
		catalogService = oldCatalog
		servicesWired = oldWired
	}
}
