package domain

import "time"

// Document is the canonical stored representation of a retrievable item.
// Documents are created at ingestion time and are read-only for the
// query and fetch paths.
type Document struct {
	// ID is the unique identifier, assigned once at ingestion.
	ID string

	// URI is the original location (file path, URL, etc).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content. Fetch returns it verbatim,
	// without truncation.
	Content string

	// URL is an optional citation link.
	URL string

	// Metadata contains provenance key-value pairs.
	Metadata map[string]string

	// CreatedAt is when the document was first ingested.
	CreatedAt time.Time

	// UpdatedAt is when the document was last re-ingested.
	UpdatedAt time.Time
}
