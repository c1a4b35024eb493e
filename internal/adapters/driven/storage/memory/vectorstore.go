// Package memory provides an in-memory vector store. Suitable for tests
// and for small corpora where persistence is not needed.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore keeps embedding records in process memory and answers
// nearest-neighbour queries with a brute-force cosine scan. The RWMutex
// makes it safe for concurrent indexing workers; records are scanned in
// insertion order so distance ties resolve stably.
type VectorStore struct {
	mu         sync.RWMutex
	dimensions int
	records    []domain.EmbeddingRecord
}

// NewVectorStore creates an in-memory store for vectors of the given
// dimensionality.
func NewVectorStore(dimensions int) (*VectorStore, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %d", dimensions)
	}
	return &VectorStore{dimensions: dimensions}, nil
}

// Clear removes all records. No-op on an empty store.
func (s *VectorStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// Insert appends records to the store.
func (s *VectorStore) Insert(_ context.Context, records []domain.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if len(r.Embedding) != s.dimensions {
			return fmt.Errorf("record %s: got %d dimensions, expected %d: %w",
				r.ID, len(r.Embedding), s.dimensions, domain.ErrDimensionMismatch)
		}
		// Copy the vector so callers cannot mutate stored state.
		vec := make([]float32, s.dimensions)
		copy(vec, r.Embedding)
		r.Embedding = vec
		s.records = append(s.records, r)
	}
	return nil
}

// Query returns up to k records nearest to the vector, ascending by
// cosine distance. An empty store yields an empty result, not an error.
func (s *VectorStore) Query(_ context.Context, vector []float32, k int) ([]domain.RetrievedChunk, error) {
	if len(vector) != s.dimensions {
		return nil, fmt.Errorf("query vector: got %d dimensions, expected %d: %w",
			len(vector), s.dimensions, domain.ErrDimensionMismatch)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if k <= 0 || len(s.records) == 0 {
		return []domain.RetrievedChunk{}, nil
	}

	hits := make([]domain.RetrievedChunk, 0, len(s.records))
	for _, r := range s.records {
		hits = append(hits, domain.RetrievedChunk{
			Content:    r.Content,
			Filename:   r.Filename,
			ChunkIndex: r.ChunkIndex,
			Distance:   cosineDistance(vector, r.Embedding),
		})
	}

	// Stable sort keeps insertion order for equal distances.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// Count returns the number of stored records.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Ping validates the store is ready. Always ready in memory.
func (s *VectorStore) Ping(_ context.Context) error {
	return nil
}

// Close releases resources.
func (s *VectorStore) Close() error {
	return nil
}

// cosineDistance returns 1 minus the cosine similarity of a and b.
// Zero vectors are treated as maximally distant.
func cosineDistance(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(normA)*math.Sqrt(normB))
}
