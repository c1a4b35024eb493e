package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/storage/memory"
	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
)

// --- Mock implementations for ask testing ---

// askMockLLM implements driven.LLMService for testing.
type askMockLLM struct {
	response    string
	generateErr error
	calls       int
	lastPrompt  string
}

func (m *askMockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *askMockLLM) ModelName() string {
	return "mock-llm"
}

func (m *askMockLLM) Ping(_ context.Context) error {
	return nil
}

func (m *askMockLLM) Close() error {
	return nil
}

// --- Tests ---

func newPopulatedStore(t *testing.T, records ...domain.EmbeddingRecord) *memory.VectorStore {
	t.Helper()
	store, err := memory.NewVectorStore(3)
	require.NoError(t, err)
	if len(records) > 0 {
		require.NoError(t, store.Insert(context.Background(), records))
	}
	return store
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("answers grounded in retrieved chunks", func(t *testing.T) {
		store := newPopulatedStore(t,
			domain.EmbeddingRecord{ID: "1", Filename: "notes.md", ChunkIndex: 0, Content: "the sky is blue", Embedding: []float32{1, 0, 0}},
		)
		llm := &askMockLLM{response: "The sky is blue."}
		retriever := NewRetriever(&mockEmbeddingService{embedding: []float32{1, 0, 0}}, store)
		svc := NewAskService(retriever, llm)

		answer, err := svc.Ask(ctx, "what color is the sky?", driving.AskOptions{})

		require.NoError(t, err)
		assert.False(t, answer.NoContext)
		assert.Equal(t, "The sky is blue.", answer.Text)
		require.Len(t, answer.Retrieved, 1)
		assert.Equal(t, "notes.md", answer.Retrieved[0].Filename)

		assert.Equal(t, 1, llm.calls)
		assert.Contains(t, llm.lastPrompt, "the sky is blue")
		assert.Contains(t, llm.lastPrompt, "Question: what color is the sky?")
	})

	t.Run("empty store short-circuits without calling the LLM", func(t *testing.T) {
		store := newPopulatedStore(t)
		llm := &askMockLLM{response: "should never be seen"}
		retriever := NewRetriever(&mockEmbeddingService{embedding: []float32{1, 0, 0}}, store)
		svc := NewAskService(retriever, llm)

		answer, err := svc.Ask(ctx, "anything?", driving.AskOptions{})

		require.NoError(t, err)
		assert.True(t, answer.NoContext)
		assert.Empty(t, answer.Text)
		assert.Empty(t, answer.Retrieved)
		assert.Zero(t, llm.calls, "LLM must not be called without context")
	})

	t.Run("limit defaults to five", func(t *testing.T) {
		records := make([]domain.EmbeddingRecord, 8)
		for i := range records {
			records[i] = domain.EmbeddingRecord{
				ID:        string(rune('a' + i)),
				Embedding: []float32{1, float32(i) * 0.01, 0},
			}
		}
		store := newPopulatedStore(t, records...)
		llm := &askMockLLM{response: "ok"}
		retriever := NewRetriever(&mockEmbeddingService{embedding: []float32{1, 0, 0}}, store)
		svc := NewAskService(retriever, llm)

		answer, err := svc.Ask(ctx, "q", driving.AskOptions{})

		require.NoError(t, err)
		assert.Len(t, answer.Retrieved, DefaultRetrievalLimit)
	})

	t.Run("honours explicit limit", func(t *testing.T) {
		store := newPopulatedStore(t,
			domain.EmbeddingRecord{ID: "1", Embedding: []float32{1, 0, 0}},
			domain.EmbeddingRecord{ID: "2", Embedding: []float32{0.9, 0.1, 0}},
			domain.EmbeddingRecord{ID: "3", Embedding: []float32{0.8, 0.2, 0}},
		)
		llm := &askMockLLM{response: "ok"}
		retriever := NewRetriever(&mockEmbeddingService{embedding: []float32{1, 0, 0}}, store)
		svc := NewAskService(retriever, llm)

		answer, err := svc.Ask(ctx, "q", driving.AskOptions{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, answer.Retrieved, 2)
	})

	t.Run("propagates LLM timeout", func(t *testing.T) {
		store := newPopulatedStore(t,
			domain.EmbeddingRecord{ID: "1", Content: "c", Embedding: []float32{1, 0, 0}},
		)
		llm := &askMockLLM{generateErr: domain.ErrLLMTimeout}
		retriever := NewRetriever(&mockEmbeddingService{embedding: []float32{1, 0, 0}}, store)
		svc := NewAskService(retriever, llm)

		_, err := svc.Ask(ctx, "q", driving.AskOptions{})

		assert.ErrorIs(t, err, domain.ErrLLMTimeout)
	})

	t.Run("propagates embedding failure before generation", func(t *testing.T) {
		store := newPopulatedStore(t,
			domain.EmbeddingRecord{ID: "1", Content: "c", Embedding: []float32{1, 0, 0}},
		)
		llm := &askMockLLM{response: "ok"}
		retriever := NewRetriever(&mockEmbeddingService{embedErr: domain.ErrEmbeddingUnavailable}, store)
		svc := NewAskService(retriever, llm)

		_, err := svc.Ask(ctx, "q", driving.AskOptions{})

		assert.ErrorIs(t, err, domain.ErrEmbeddingUnavailable)
		assert.Zero(t, llm.calls)
	})
}
