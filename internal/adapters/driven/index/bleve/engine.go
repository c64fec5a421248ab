// Package bleve provides a full-text search engine adapter backed by
// the Bleve library with its scorch index format.
package bleve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.SearchEngine = (*Engine)(nil)

// indexedDocument is the shape stored in the index. Only the fields
// needed for matching are indexed; hydration happens against the
// document store.
type indexedDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Engine is a Bleve-backed implementation of driven.SearchEngine.
// Bleve indexes are safe for concurrent readers and a single writer
// goroutine at a time; Index and Delete serialise internally.
type Engine struct {
	index bleve.Index
}

// NewMemoryEngine creates an in-memory engine. Contents are lost on
// process exit; the corpus must be re-ingested at startup.
func NewMemoryEngine() (*Engine, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating in-memory index: %w", err)
	}
	return &Engine{index: index}, nil
}

// NewEngine opens or creates a persistent engine at the given path.
func NewEngine(path string) (*Engine, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	index, err := bleve.NewUsing(path, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		index, err = bleve.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening index: %w", err)
		}
	}
	return &Engine{index: index}, nil
}

// buildIndexMapping creates the Bleve index mapping.
func buildIndexMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("content", bleve.NewTextFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", docMapping)
	return indexMapping
}

// Index adds or updates a document in the search index.
func (e *Engine) Index(_ context.Context, doc domain.Document) error {
	entry := indexedDocument{
		Title:   doc.Title,
		Content: doc.Content,
	}
	if err := e.index.Index(doc.ID, entry); err != nil {
		return fmt.Errorf("indexing document %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes a document from the search index.
func (e *Engine) Delete(_ context.Context, documentID string) error {
	if err := e.index.Delete(documentID); err != nil {
		return fmt.Errorf("deleting document %s: %w", documentID, err)
	}
	return nil
}

// Search performs a BM25-style keyword search across title and content.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]driven.SearchHit, error) {
	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)

	result, err := e.index.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	hits := make([]driven.SearchHit, len(result.Hits))
	for i, hit := range result.Hits {
		hits[i] = driven.SearchHit{
			DocumentID: hit.ID,
			Score:      hit.Score,
		}
	}
	return hits, nil
}

// Close releases index resources.
func (e *Engine) Close() error {
	return e.index.Close()
}
