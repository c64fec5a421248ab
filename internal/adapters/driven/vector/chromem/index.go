// Package chromem provides a vector index adapter backed by chromem-go,
// an embeddable vector database with cosine similarity search.
package chromem

import (
	"context"
	"fmt"

	"github.com/philippgille/chromem-go"

	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// collectionName is the single collection holding document vectors.
const collectionName = "documents"

// Index is a chromem-go backed implementation of driven.VectorIndex.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
}

// NewIndex creates a vector index. With an empty path the index is held
// in memory; otherwise it is persisted under the given directory.
func NewIndex(path string) (*Index, error) {
	var db *chromem.DB
	var err error
	if path == "" {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("opening vector database: %w", err)
		}
	}

	// Embeddings are produced upstream by the embedding service, so no
	// embedding function is attached to the collection.
	collection, err := db.GetOrCreateCollection(collectionName, map[string]string{
		"hnsw:space": "cosine",
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("opening collection: %w", err)
	}

	return &Index{db: db, collection: collection}, nil
}

// Add inserts or replaces the vector for the given document ID.
func (i *Index) Add(ctx context.Context, documentID string, embedding []float32) error {
	err := i.collection.Add(ctx,
		[]string{documentID},
		[][]float32{embedding},
		nil,
		[]string{documentID},
	)
	if err != nil {
		return fmt.Errorf("adding vector for %s: %w", documentID, err)
	}
	return nil
}

// Delete removes a vector from the index.
func (i *Index) Delete(ctx context.Context, documentID string) error {
	if err := i.collection.Delete(ctx, nil, nil, documentID); err != nil {
		return fmt.Errorf("deleting vector for %s: %w", documentID, err)
	}
	return nil
}

// Search finds the k nearest neighbours to the query vector.
func (i *Index) Search(ctx context.Context, query []float32, k int) ([]driven.VectorHit, error) {
	// chromem rejects requests for more results than stored vectors.
	if count := i.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := i.collection.QueryEmbedding(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("querying vectors: %w", err)
	}

	hits := make([]driven.VectorHit, len(results))
	for idx, result := range results {
		hits[idx] = driven.VectorHit{
			DocumentID: result.ID,
			Similarity: float64(result.Similarity),
		}
	}
	return hits, nil
}

// Close releases resources. chromem holds no open handles beyond what
// the process owns, so this is a no-op kept for interface symmetry.
func (i *Index) Close() error {
	return nil
}
