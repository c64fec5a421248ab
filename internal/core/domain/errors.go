package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or missing required input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable indicates the search index is not configured
	// or unreachable. Searches fail rather than return stale data.
	ErrSearchUnavailable = errors.New("search index unavailable")

	// ErrStoreUnavailable indicates the document store is not configured
	// or unreachable.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrEmbeddingUnavailable indicates the embedding provider is not
	// configured. Semantic search is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVectorIndexUnavailable indicates the vector index is not
	// configured. Semantic similarity search is disabled.
	ErrVectorIndexUnavailable = errors.New("vector index unavailable")
)
