package services

import (
	"fmt"
	"strings"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

// chunkSeparator joins retrieved chunk texts inside the context block.
const chunkSeparator = "\n---\n"

// promptTemplate is the fixed grounding prompt. The instruction tells the
// model to answer only from the given context and to say so when it cannot.
const promptTemplate = `Use the following context to answer the question. Be specific and helpful.
If you cannot answer based on the context, say so clearly.

Context:
%s

Question: %s

Answer:`

// buildPrompt assembles the grounded prompt from retrieved chunks and the
// literal question.
func buildPrompt(chunks []domain.RetrievedChunk, question string) string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	context := strings.Join(texts, chunkSeparator)
	return fmt.Sprintf(promptTemplate, context, question)
}
