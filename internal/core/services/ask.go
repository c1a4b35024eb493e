package services

import (
	"context"
	"fmt"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/arkestra-labs/askdocs-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// DefaultRetrievalLimit is how many chunks ground an answer by default.
const DefaultRetrievalLimit = 5

// AskService answers questions grounded in retrieved document chunks.
// The flow is linear: retrieve, short-circuit on no context, build the
// prompt, generate. Instances hold no mutable state and are safe for
// concurrent use.
type AskService struct {
	retriever  *Retriever
	llmService driven.LLMService
}

// NewAskService creates a new ask service.
func NewAskService(retriever *Retriever, llmService driven.LLMService) *AskService {
	return &AskService{
		retriever:  retriever,
		llmService: llmService,
	}
}

// Ask answers a question using retrieved context. When retrieval returns
// zero chunks the LLM is never called: an ungrounded answer would be a
// hallucination, and the remote call is not free.
func (s *AskService) Ask(ctx context.Context, question string, opts driving.AskOptions) (*domain.Answer, error) {
	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRetrievalLimit
	}

	chunks, err := s.retriever.Retrieve(ctx, question, limit)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	if len(chunks) == 0 {
		logger.Info("No chunks retrieved, skipping generation")
		return &domain.Answer{NoContext: true}, nil
	}

	for i, c := range chunks {
		logger.Debug("  %d. %s[%d] (distance: %.3f)", i+1, c.Filename, c.ChunkIndex, c.Distance)
	}

	prompt := buildPrompt(chunks, question)
	logger.Debug("Prompt: %d bytes for model %s", len(prompt), s.llmService.ModelName())

	text, err := s.llmService.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &domain.Answer{
		Text:      text,
		Retrieved: chunks,
	}, nil
}
