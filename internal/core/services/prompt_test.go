package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("contains instruction, context and question", func(t *testing.T) {
		chunks := []domain.RetrievedChunk{
			{Content: "alpha facts", Filename: "a.txt", ChunkIndex: 0},
		}

		prompt := buildPrompt(chunks, "what is alpha?")

		assert.Contains(t, prompt, "Use the following context to answer the question.")
		assert.Contains(t, prompt, "alpha facts")
		assert.Contains(t, prompt, "Question: what is alpha?")
		assert.True(t, strings.HasSuffix(prompt, "Answer:"))
	})

	t.Run("joins chunks with separator in retrieval order", func(t *testing.T) {
		chunks := []domain.RetrievedChunk{
			{Content: "first"},
			{Content: "second"},
			{Content: "third"},
		}

		prompt := buildPrompt(chunks, "q")

		assert.Contains(t, prompt, "first\n---\nsecond\n---\nthird")
	})

	t.Run("question is inserted literally", func(t *testing.T) {
		chunks := []domain.RetrievedChunk{{Content: "c"}}

		prompt := buildPrompt(chunks, `why does "%s" matter?`)

		assert.Contains(t, prompt, `Question: why does "%s" matter?`)
	})
}
