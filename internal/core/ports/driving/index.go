package driving

import (
	"context"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

// IndexService rebuilds the vector store from the corpus.
type IndexService interface {
	// Reindex clears the store and repopulates it from every supported
	// document in the corpus. Per-file failures are collected into the
	// report; only infrastructure failures abort the run.
	Reindex(ctx context.Context) (*domain.IndexReport, error)
}
