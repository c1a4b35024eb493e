package services

import (
	"context"
	"fmt"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/arkestra-labs/askdocs-cli/internal/logger"
)

// Retriever embeds a query and finds its nearest stored chunks.
type Retriever struct {
	embeddingService driven.EmbeddingService
	store            driven.VectorStore
}

// NewRetriever creates a new retriever.
func NewRetriever(embeddingService driven.EmbeddingService, store driven.VectorStore) *Retriever {
	return &Retriever{
		embeddingService: embeddingService,
		store:            store,
	}
}

// Retrieve embeds the query and issues exactly one nearest-neighbour
// lookup against the store. An empty store yields an empty result, never
// an error: that is a valid terminal state communicated upward.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	logger.Debug("Retrieve: query=%q, k=%d", query, k)

	vector, err := r.embeddingService.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	logger.Debug("Query embedding: %d dimensions", len(vector))

	hits, err := r.store.Query(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	logger.Debug("Retrieved %d chunks", len(hits))

	return hits, nil
}
