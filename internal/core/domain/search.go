package domain

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means use the
	// service default.
	Limit int

	// Hybrid requests combined keyword + semantic search. It is a
	// request, not a guarantee: the service degrades to keyword-only
	// search when no vector index or embedding provider is available.
	Hybrid bool
}

// SearchResult is a single search hit. Results are ephemeral: they
// are assembled per query and never persisted.
type SearchResult struct {
	// Document is the matched document, hydrated from the store.
	// Every result references a stored document, so its ID is always
	// resolvable by a subsequent fetch.
	Document Document

	// Snippet is a bounded excerpt of the document content around
	// the first query term match.
	Snippet string

	// Score is the relevance score. Results are ordered by
	// non-increasing score, ties broken by ascending document ID.
	Score float64
}
