package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/storage/memory"
	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

func TestIngestService_AssignsID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	engine := &mockSearchEngine{}
	svc := NewIngestService(store, engine, nil, nil, nil)

	doc, err := svc.Ingest(ctx, domain.Document{
		URI:     "file:///corpus/cats.md",
		Title:   "Cats",
		Content: "Cats are small mammals.",
	})
	require.NoError(t, err)

	_, parseErr := uuid.Parse(doc.ID)
	assert.NoError(t, parseErr)
	assert.False(t, doc.CreatedAt.IsZero())
	assert.False(t, doc.UpdatedAt.IsZero())

	// Stored and indexed under the assigned ID.
	stored, err := store.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cats", stored.Title)
	require.Len(t, engine.indexed, 1)
	assert.Equal(t, doc.ID, engine.indexed[0].ID)
}

func TestIngestService_StableIDAcrossReingest(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	svc := NewIngestService(store, &mockSearchEngine{}, nil, nil, nil)

	first, err := svc.Ingest(ctx, domain.Document{
		URI:     "file:///corpus/cats.md",
		Content: "v1",
	})
	require.NoError(t, err)

	second, err := svc.Ingest(ctx, domain.Document{
		URI:     "file:///corpus/cats.md",
		Content: "v2",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	stored, err := store.GetDocument(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", stored.Content)
}

func TestIngestService_RejectsEmptyDocument(t *testing.T) {
	ctx := context.Background()
	svc := NewIngestService(memory.NewDocumentStore(), &mockSearchEngine{}, nil, nil, nil)

	_, err := svc.Ingest(ctx, domain.Document{URI: "file:///empty.txt"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngestService_VectorIndexingBestEffort(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()

	t.Run("vectors added when embedding works", func(t *testing.T) {
		vector := &mockVectorIndex{}
		svc := NewIngestService(store, &mockSearchEngine{}, vector, &mockEmbeddingService{}, nil)

		doc, err := svc.Ingest(ctx, domain.Document{Title: "T", Content: "text"})
		require.NoError(t, err)
		assert.Contains(t, vector.added, doc.ID)
	})

	t.Run("embedding failure does not fail ingest", func(t *testing.T) {
		vector := &mockVectorIndex{}
		embed := &mockEmbeddingService{embedErr: errors.New("provider down")}
		svc := NewIngestService(store, &mockSearchEngine{}, vector, embed, nil)

		doc, err := svc.Ingest(ctx, domain.Document{Title: "T2", Content: "text"})
		require.NoError(t, err)

		// Still fetchable despite the missing vector.
		_, err = store.GetDocument(ctx, doc.ID)
		assert.NoError(t, err)
	})
}

func TestIngestService_IngestAll(t *testing.T) {
	ctx := context.Background()

	t.Run("drains connector", func(t *testing.T) {
		store := memory.NewDocumentStore()
		svc := NewIngestService(store, &mockSearchEngine{}, nil, nil, nil)
		conn := &mockConnector{docs: []domain.Document{
			{URI: "file:///a.txt", Content: "a"},
			{URI: "file:///b.txt", Content: "b"},
		}}

		n, err := svc.IngestAll(ctx, conn)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("validation failure aborts", func(t *testing.T) {
		svc := NewIngestService(memory.NewDocumentStore(), &mockSearchEngine{}, nil, nil, nil)
		conn := &mockConnector{validateErr: errors.New("path does not exist")}

		_, err := svc.IngestAll(ctx, conn)
		assert.Error(t, err)
	})

	t.Run("load error surfaces after partial ingest", func(t *testing.T) {
		svc := NewIngestService(memory.NewDocumentStore(), &mockSearchEngine{}, nil, nil, nil)
		conn := &mockConnector{
			docs:    []domain.Document{{URI: "file:///a.txt", Content: "a"}},
			loadErr: errors.New("unreadable file"),
		}

		n, err := svc.IngestAll(ctx, conn)
		assert.Error(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestIngestService_ChunksLongContent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	vector := &mockVectorIndex{}
	embed := &mockEmbeddingService{}
	svc := NewIngestService(store, &mockSearchEngine{}, vector, embed, nil)

	doc, err := svc.Ingest(ctx, domain.Document{
		Title:   "Long",
		Content: strings.Repeat("lorem ipsum ", 200),
	})
	require.NoError(t, err)

	// Content exceeds one chunk, so the embedder sees several pieces
	// but the index stores a single pooled vector.
	assert.Greater(t, len(embed.embedded), 1)
	assert.Contains(t, vector.added, doc.ID)
}

func TestMeanPool(t *testing.T) {
	t.Run("single vector passes through", func(t *testing.T) {
		v := []float32{1, 2, 3}
		assert.Equal(t, v, meanPool([][]float32{v}))
	})

	t.Run("averages componentwise", func(t *testing.T) {
		pooled := meanPool([][]float32{
			{1, 0, 2},
			{3, 4, 0},
		})
		assert.Equal(t, []float32{2, 2, 1}, pooled)
	})
}
