package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

func TestFetchService_EmptyID(t *testing.T) {
	ctx := context.Background()
	svc := NewFetchService(seedStore(t), nil)

	for _, id := range []string{"", "   ", "\n"} {
		_, err := svc.Fetch(ctx, id)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestFetchService_UnknownID(t *testing.T) {
	ctx := context.Background()
	svc := NewFetchService(seedStore(t), nil)

	_, err := svc.Fetch(ctx, "doc1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchService_ReturnsFullDocument(t *testing.T) {
	ctx := context.Background()
	stored := domain.Document{
		ID:      "doc1",
		Title:   "Cats",
		Content: "Cats are small mammals...",
		URL:     "https://example.org/cats",
		Metadata: map[string]string{
			"source": "Corpus Press",
		},
	}
	svc := NewFetchService(seedStore(t, stored), nil)

	doc, err := svc.Fetch(ctx, "doc1")
	require.NoError(t, err)

	// Content verbatim, metadata passed through unmodified.
	assert.Equal(t, stored.ID, doc.ID)
	assert.Equal(t, stored.Content, doc.Content)
	assert.Equal(t, stored.URL, doc.URL)
	assert.Equal(t, stored.Metadata, doc.Metadata)
}

func TestFetchService_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewFetchService(seedStore(t, domain.Document{
		ID:      "doc1",
		Title:   "Stable",
		Content: "Same every time.",
	}), nil)

	first, err := svc.Fetch(ctx, "doc1")
	require.NoError(t, err)
	second, err := svc.Fetch(ctx, "doc1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFetchService_NoStore(t *testing.T) {
	ctx := context.Background()
	svc := NewFetchService(nil, nil)

	_, err := svc.Fetch(ctx, "doc1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
