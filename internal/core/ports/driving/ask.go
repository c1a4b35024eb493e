package driving

import (
	"context"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

// AskService answers a free-text question grounded in indexed documents.
type AskService interface {
	// Ask retrieves context for the question, builds a grounded prompt
	// and generates an answer. When retrieval returns nothing the LLM is
	// never called and the answer has NoContext set.
	Ask(ctx context.Context, question string, opts AskOptions) (*domain.Answer, error)
}

// AskOptions configures a question-answering run.
type AskOptions struct {
	// Limit is the number of chunks to retrieve (default 5).
	Limit int
}
