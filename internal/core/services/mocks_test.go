package services

import (
	"context"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
)

// mockSearchEngine implements driven.SearchEngine for testing.
type mockSearchEngine struct {
	hits      []driven.SearchHit
	indexed   []domain.Document
	searchErr error
	indexErr  error
}

func (m *mockSearchEngine) Index(_ context.Context, doc domain.Document) error {
	if m.indexErr != nil {
		return m.indexErr
	}
	m.indexed = append(m.indexed, doc)
	return nil
}

func (m *mockSearchEngine) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockSearchEngine) Search(_ context.Context, _ string, limit int) ([]driven.SearchHit, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if limit > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:limit], nil
}

func (m *mockSearchEngine) Close() error { return nil }

// mockVectorIndex implements driven.VectorIndex for testing.
type mockVectorIndex struct {
	hits      []driven.VectorHit
	added     map[string][]float32
	searchErr error
	addErr    error
}

func (m *mockVectorIndex) Add(_ context.Context, documentID string, embedding []float32) error {
	if m.addErr != nil {
		return m.addErr
	}
	if m.added == nil {
		m.added = make(map[string][]float32)
	}
	m.added[documentID] = embedding
	return nil
}

func (m *mockVectorIndex) Delete(_ context.Context, _ string) error { return nil }

func (m *mockVectorIndex) Search(_ context.Context, _ []float32, k int) ([]driven.VectorHit, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k > len(m.hits) {
		return m.hits, nil
	}
	return m.hits[:k], nil
}

func (m *mockVectorIndex) Close() error { return nil }

// mockEmbeddingService implements driven.EmbeddingService for testing.
type mockEmbeddingService struct {
	embedding []float32
	embedded  []string
	embedErr  error
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.embedded = append(m.embedded, text)
	if m.embedding != nil {
		return m.embedding, nil
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *mockEmbeddingService) Dimensions() int   { return 3 }
func (m *mockEmbeddingService) ModelName() string { return "mock-embed" }
func (m *mockEmbeddingService) Close() error      { return nil }

// mockConnector implements driven.Connector for testing.
type mockConnector struct {
	docs        []domain.Document
	loadErr     error
	validateErr error
}

func (m *mockConnector) Type() string { return "mock" }

func (m *mockConnector) Validate(_ context.Context) error { return m.validateErr }

func (m *mockConnector) Load(_ context.Context) (<-chan domain.Document, <-chan error) {
	docs := make(chan domain.Document)
	errs := make(chan error, 1)
	go func() {
		defer close(docs)
		defer close(errs)
		for _, d := range m.docs {
			docs <- d
		}
		if m.loadErr != nil {
			errs <- m.loadErr
		}
	}()
	return docs, errs
}

func (m *mockConnector) Watch(_ context.Context) (<-chan domain.Document, error) {
	return nil, domain.ErrInvalidInput
}

func (m *mockConnector) Close() error { return nil }
