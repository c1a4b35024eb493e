package driven

import (
	"context"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

// VectorStore persists embedding records and answers nearest-neighbour
// queries. It is the substitutable seam between the in-memory and
// persistent deployment modes: every implementation must preserve the
// same contract.
//
// Contract:
//   - Query orders results by ascending cosine distance, ties broken by
//     insertion order (stable).
//   - Query against an empty store returns an empty slice, not an error.
//   - Insert appends without deduplication. A failed batch leaves the
//     store in an indeterminate state; callers recover by re-running the
//     whole reindex.
//   - Clear is idempotent.
//
// Implementations must be safe for concurrent use; the store is the
// single point of serialisation for concurrent indexing workers.
type VectorStore interface {
	// Clear removes all records. No-op on an empty store.
	Clear(ctx context.Context) error

	// Insert appends records to the store.
	Insert(ctx context.Context, records []domain.EmbeddingRecord) error

	// Query returns up to k records nearest to the given vector,
	// ascending by distance.
	Query(ctx context.Context, vector []float32, k int) ([]domain.RetrievedChunk, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Ping validates the store is reachable and ready.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
