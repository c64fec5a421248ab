// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: document persistence (memory or SQLite)
//   - SearchEngine: full-text search (Bleve)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - VectorIndex: vector storage/search (chromem-go). Only enabled when
//     an EmbeddingService is configured.
//   - EmbeddingService: generates vector embeddings. Without it,
//     VectorIndex is also disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: any adapter or connector package
package driven
