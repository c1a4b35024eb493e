package driven

import (
	"context"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

// Corpus discovers and reads source documents for indexing.
// The filesystem connector is the only implementation today; the port
// exists so the indexer never touches the filesystem directly.
type Corpus interface {
	// Type returns the connector type identifier.
	Type() string

	// Validate checks the corpus is readable. For the filesystem
	// connector this checks the root directory exists and is a directory.
	Validate(ctx context.Context) error

	// Documents streams every supported document in the corpus.
	// Unsupported entries and directories are skipped silently.
	// Per-file read failures are sent on the error channel and do not
	// stop the stream. Both channels are closed when discovery finishes.
	Documents(ctx context.Context) (<-chan domain.Document, <-chan error)

	// Close releases resources.
	Close() error
}
