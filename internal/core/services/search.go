package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
	"github.com/deepkinai/mini-research-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Default result shaping parameters. Both can be overridden from
// configuration via the setters.
const (
	DefaultLimit         = 10
	DefaultSnippetLength = 300
)

// rrfK is the reciprocal rank fusion constant. The conventional value
// prevents top ranks from dominating the merged ordering.
const rrfK = 60

// scoredHit holds intermediate results before hydration.
type scoredHit struct {
	documentID string
	score      float64
}

// SearchService answers relevance-ranked queries over the document store.
// The vector index and embedding service are optional; without them the
// service runs keyword-only search.
type SearchService struct {
	docStore      driven.DocumentStore
	searchIndex   driven.SearchEngine
	vectorIndex   driven.VectorIndex
	embedding     driven.EmbeddingService
	log           *logger.Logger
	defaultLimit  int
	snippetLength int
}

// NewSearchService creates a new search service. vectorIndex and
// embedding may be nil, which disables hybrid search.
func NewSearchService(
	docStore driven.DocumentStore,
	searchIndex driven.SearchEngine,
	vectorIndex driven.VectorIndex,
	embedding driven.EmbeddingService,
	log *logger.Logger,
) *SearchService {
	if log == nil {
		log = logger.Discard()
	}
	return &SearchService{
		docStore:      docStore,
		searchIndex:   searchIndex,
		vectorIndex:   vectorIndex,
		embedding:     embedding,
		log:           log,
		defaultLimit:  DefaultLimit,
		snippetLength: DefaultSnippetLength,
	}
}

// SetDefaultLimit overrides the result limit used when the caller does
// not supply one.
func (s *SearchService) SetDefaultLimit(n int) {
	if n > 0 {
		s.defaultLimit = n
	}
}

// SetSnippetLength overrides the maximum snippet length in runes.
func (s *SearchService) SetSnippetLength(n int) {
	if n > 0 {
		s.snippetLength = n
	}
}

// Search runs a query and returns ranked results.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	// Blank queries yield an empty result set, not an error.
	query = strings.TrimSpace(query)
	if query == "" {
		s.log.Debug("search: empty query, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	// Request extra results internally so that hits whose documents
	// have vanished can be skipped without shrinking the page.
	internalLimit := limit * 2

	s.log.Debug("search: query_len=%d limit=%d hybrid=%t", len(query), limit, opts.Hybrid)

	var hits []scoredHit
	var err error
	if opts.Hybrid && s.canDoVector() {
		hits, err = s.hybridSearch(ctx, query, internalLimit)
	} else {
		hits, err = s.keywordSearch(ctx, query, internalLimit)
	}
	if err != nil {
		s.log.Warn("search failed: %v", err)
		return nil, fmt.Errorf("search: %w", err)
	}

	results, err := s.hydrateResults(ctx, hits, query)
	if err != nil {
		return nil, fmt.Errorf("hydrate results: %w", err)
	}

	// Descending score; ties broken by ascending ID for determinism.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	s.log.Info("search: query_len=%d results=%d", len(query), len(results))
	return results, nil
}

// canDoVector reports whether hybrid search is possible.
func (s *SearchService) canDoVector() bool {
	return s.vectorIndex != nil && s.embedding != nil
}

// keywordSearch performs full-text search via the search engine.
func (s *SearchService) keywordSearch(ctx context.Context, query string, limit int) ([]scoredHit, error) {
	if s.searchIndex == nil {
		return nil, domain.ErrSearchUnavailable
	}

	hits, err := s.searchIndex.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	results := make([]scoredHit, len(hits))
	for i, hit := range hits {
		results[i] = scoredHit{documentID: hit.DocumentID, score: hit.Score}
	}
	return results, nil
}

// vectorSearch performs semantic similarity search.
func (s *SearchService) vectorSearch(ctx context.Context, query string, limit int) ([]scoredHit, error) {
	if s.vectorIndex == nil {
		return nil, domain.ErrVectorIndexUnavailable
	}
	if s.embedding == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	embedding, err := s.embedding.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("generate query embedding: %w", err)
	}

	hits, err := s.vectorIndex.Search(ctx, embedding, limit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	results := make([]scoredHit, len(hits))
	for i, hit := range hits {
		results[i] = scoredHit{documentID: hit.DocumentID, score: hit.Similarity}
	}
	return results, nil
}

// hybridSearch combines keyword and vector search using RRF.
// If one leg fails the other's results are used alone; only a double
// failure is an error.
func (s *SearchService) hybridSearch(ctx context.Context, query string, limit int) ([]scoredHit, error) {
	var keywordResults, vectorResults []scoredHit
	var keywordErr, vectorErr error

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		keywordResults, keywordErr = s.keywordSearch(ctx, query, limit)
	}()
	go func() {
		defer wg.Done()
		vectorResults, vectorErr = s.vectorSearch(ctx, query, limit)
	}()
	wg.Wait()

	if keywordErr != nil && vectorErr != nil {
		return nil, fmt.Errorf("hybrid search: keyword=%w, vector=%v", keywordErr, vectorErr)
	}
	if keywordErr != nil {
		s.log.Warn("hybrid search: keyword leg failed, using vector results only: %v", keywordErr)
		return vectorResults, nil
	}
	if vectorErr != nil {
		s.log.Warn("hybrid search: vector leg failed, using keyword results only: %v", vectorErr)
		return keywordResults, nil
	}

	return reciprocalRankFusion(keywordResults, vectorResults, rrfK), nil
}

// reciprocalRankFusion merges two ranked lists. k prevents high ranks
// from dominating.
func reciprocalRankFusion(list1, list2 []scoredHit, k int) []scoredHit {
	scores := make(map[string]float64)

	for rank, hit := range list1 {
		scores[hit.documentID] += 1.0 / float64(k+rank+1)
	}
	for rank, hit := range list2 {
		scores[hit.documentID] += 1.0 / float64(k+rank+1)
	}

	merged := make([]scoredHit, 0, len(scores))
	for id, score := range scores {
		merged = append(merged, scoredHit{documentID: id, score: score})
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].score != merged[j].score {
			return merged[i].score > merged[j].score
		}
		return merged[i].documentID < merged[j].documentID
	})

	return merged
}

// hydrateResults resolves hit IDs against the document store. Hits whose
// document no longer exists are dropped, never fabricated.
func (s *SearchService) hydrateResults(
	ctx context.Context, hits []scoredHit, query string,
) ([]domain.SearchResult, error) {
	if s.docStore == nil {
		return nil, domain.ErrStoreUnavailable
	}

	results := make([]domain.SearchResult, 0, len(hits))
	for _, hit := range hits {
		doc, err := s.docStore.GetDocument(ctx, hit.documentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Document was deleted after indexing; skip it.
				s.log.Debug("search: dropping stale hit %s", hit.documentID)
				continue
			}
			return nil, fmt.Errorf("get document %s: %w", hit.documentID, err)
		}

		results = append(results, domain.SearchResult{
			Document: *doc,
			Snippet:  makeSnippet(doc.Content, query, s.snippetLength),
			Score:    hit.score,
		})
	}

	return results, nil
}

// makeSnippet derives a bounded excerpt from content, centered on the
// first occurrence of any query term. Falls back to the document head
// when no term matches. maxLen is in runes.
func makeSnippet(content, query string, maxLen int) string {
	runes := []rune(content)
	if len(runes) <= maxLen {
		return strings.TrimSpace(content)
	}

	center := 0
	lower := strings.ToLower(content)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		idx := strings.Index(lower, term)
		if idx >= 0 {
			center = len([]rune(lower[:idx]))
			break
		}
	}

	start := center - maxLen/2
	if start < 0 {
		start = 0
	}
	end := start + maxLen
	if end > len(runes) {
		end = len(runes)
		start = end - maxLen
	}

	snippet := strings.TrimSpace(trimPartialWords(string(runes[start:end]), start > 0, end < len(runes)))
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}

// trimPartialWords drops cut-off word fragments at the excerpt edges.
func trimPartialWords(s string, trimFront, trimBack bool) string {
	if trimFront {
		if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
			s = s[i+1:]
		}
	}
	if trimBack {
		if i := strings.LastIndexFunc(s, unicode.IsSpace); i >= 0 {
			s = s[:i]
		}
	}
	return s
}
