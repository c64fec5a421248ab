package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
	"github.com/deepkinai/mini-research-mcp/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.FetchService = (*FetchService)(nil)

// FetchService retrieves complete documents by identifier.
type FetchService struct {
	docStore driven.DocumentStore
	log      *logger.Logger
}

// NewFetchService creates a new fetch service.
func NewFetchService(docStore driven.DocumentStore, log *logger.Logger) *FetchService {
	if log == nil {
		log = logger.Discard()
	}
	return &FetchService{docStore: docStore, log: log}
}

// Fetch returns the full document for the given ID. Unlike search's
// tolerance of blank queries, a blank ID is malformed input.
func (s *FetchService) Fetch(ctx context.Context, id string) (*domain.Document, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("fetch: document ID is required: %w", domain.ErrInvalidInput)
	}

	if s.docStore == nil {
		return nil, domain.ErrStoreUnavailable
	}

	doc, err := s.docStore.GetDocument(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Info("fetch: id=%s miss", id)
			return nil, fmt.Errorf("fetch %s: %w", id, domain.ErrNotFound)
		}
		s.log.Warn("fetch: id=%s store error: %v", id, err)
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}

	s.log.Info("fetch: id=%s hit", id)
	return doc, nil
}
