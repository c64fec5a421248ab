// Package mcp provides a Model Context Protocol server adapter exposing
// search and fetch over the document corpus. It enables AI assistants to
// run retrieval-augmented lookups against the local index.
package mcp

import (
	"errors"
	"fmt"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingFetchService is returned when the fetch service is not provided.
var ErrMissingFetchService = errors.New("mcp: fetch service is required")

// translateError maps internal failures onto the protocol's error
// vocabulary. Only the taxonomy label and the failing operation reach
// the caller; wrapped internal detail stays server-side.
func translateError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("invalid argument: %s", op)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("not found: %s", op)
	case errors.Is(err, domain.ErrSearchUnavailable),
		errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("service unavailable: %s", op)
	default:
		return fmt.Errorf("internal error: %s", op)
	}
}
