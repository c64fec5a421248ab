package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/deepkinai/mini-research-mcp/internal/chunker"
	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
	"github.com/deepkinai/mini-research-mcp/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService loads documents into the store and keeps the search
// and vector indexes in step with it. Identifiers are assigned here,
// once, and never derived from query content.
type IngestService struct {
	docStore    driven.DocumentStore
	searchIndex driven.SearchEngine
	vectorIndex driven.VectorIndex
	embedding   driven.EmbeddingService
	chunks      *chunker.Chunker
	log         *logger.Logger
}

// NewIngestService creates a new ingest service. vectorIndex and
// embedding may be nil; documents are then indexed for keyword search
// only.
func NewIngestService(
	docStore driven.DocumentStore,
	searchIndex driven.SearchEngine,
	vectorIndex driven.VectorIndex,
	embedding driven.EmbeddingService,
	log *logger.Logger,
) *IngestService {
	if log == nil {
		log = logger.Discard()
	}
	return &IngestService{
		docStore:    docStore,
		searchIndex: searchIndex,
		vectorIndex: vectorIndex,
		embedding:   embedding,
		chunks:      chunker.New(),
		log:         log,
	}
}

// Ingest stores and indexes a single document.
func (s *IngestService) Ingest(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	if strings.TrimSpace(doc.Content) == "" && strings.TrimSpace(doc.Title) == "" {
		return nil, fmt.Errorf("ingest: document has no title or content: %w", domain.ErrInvalidInput)
	}
	if s.docStore == nil {
		return nil, domain.ErrStoreUnavailable
	}

	now := time.Now().UTC()

	// Re-ingesting a known URI updates the existing document so its
	// identifier stays stable across corpus reloads.
	if doc.ID == "" && doc.URI != "" {
		existing, err := s.docStore.GetDocumentByURI(ctx, doc.URI)
		switch {
		case err == nil:
			doc.ID = existing.ID
			doc.CreatedAt = existing.CreatedAt
		case errors.Is(err, domain.ErrNotFound):
			// First sighting of this URI.
		default:
			return nil, fmt.Errorf("look up document by URI: %w", err)
		}
	}

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	if err := s.docStore.SaveDocument(ctx, &doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	if s.searchIndex != nil {
		if err := s.searchIndex.Index(ctx, doc); err != nil {
			return nil, fmt.Errorf("index document %s: %w", doc.ID, err)
		}
	}

	// Vector indexing is best-effort: a broken embedding provider must
	// not block keyword availability of the document.
	if s.vectorIndex != nil && s.embedding != nil {
		if err := s.embedAndAdd(ctx, doc); err != nil {
			s.log.Warn("ingest: vector indexing failed for %s: %v", doc.ID, err)
		}
	}

	s.log.Debug("ingest: stored %s (%s)", doc.ID, doc.Title)
	return &doc, nil
}

// embedAndAdd embeds the document and stores one vector per document.
// Long content is embedded chunk by chunk and mean-pooled, since the
// embedding model's input is bounded.
func (s *IngestService) embedAndAdd(ctx context.Context, doc domain.Document) error {
	chunks := s.chunks.Split(doc.Content)
	if len(chunks) == 0 {
		chunks = []string{doc.Title}
	}

	vectors := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		vec, err := s.embedding.Embed(ctx, chunk)
		if err != nil {
			return fmt.Errorf("embed: %w", err)
		}
		vectors = append(vectors, vec)
	}

	if err := s.vectorIndex.Add(ctx, doc.ID, meanPool(vectors)); err != nil {
		return fmt.Errorf("add vector: %w", err)
	}
	return nil
}

// meanPool averages chunk embeddings into a single document embedding.
func meanPool(vectors [][]float32) []float32 {
	if len(vectors) == 1 {
		return vectors[0]
	}

	pooled := make([]float32, len(vectors[0]))
	for _, vec := range vectors {
		for i := range pooled {
			pooled[i] += vec[i]
		}
	}

	n := float32(len(vectors))
	for i := range pooled {
		pooled[i] /= n
	}
	return pooled
}

// IngestAll drains a connector and ingests every document it emits.
func (s *IngestService) IngestAll(ctx context.Context, connector driven.Connector) (int, error) {
	if connector == nil {
		return 0, fmt.Errorf("ingest: connector is required: %w", domain.ErrInvalidInput)
	}

	if err := connector.Validate(ctx); err != nil {
		return 0, fmt.Errorf("validate connector: %w", err)
	}

	docs, errs := connector.Load(ctx)

	count := 0
	for docs != nil || errs != nil {
		select {
		case doc, ok := <-docs:
			if !ok {
				docs = nil
				continue
			}
			if _, err := s.Ingest(ctx, doc); err != nil {
				s.log.Warn("ingest: skipping %s: %v", doc.URI, err)
				continue
			}
			count++
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if err != nil {
				return count, fmt.Errorf("load documents: %w", err)
			}
		case <-ctx.Done():
			return count, ctx.Err()
		}
	}

	s.log.Info("ingest: loaded %d documents from %s", count, connector.Type())
	return count, nil
}
