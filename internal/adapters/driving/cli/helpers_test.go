package cli

import (
	"context"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
)

// --- Mock services ---

// mockAskService implements driving.AskService for testing.
type mockAskService struct {
	answer   *domain.Answer
	err      error
	lastOpts driving.AskOptions
	lastQ    string
}

func (m *mockAskService) Ask(_ context.Context, question string, opts driving.AskOptions) (*domain.Answer, error) {
	m.lastQ = question
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.answer, nil
}

// mockIndexService implements driving.IndexService for testing.
type mockIndexService struct {
	report *domain.IndexReport
	err    error
	calls  int
}

func (m *mockIndexService) Reindex(_ context.Context) (*domain.IndexReport, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// setupTestServices injects working mock services and returns a cleanup
// function restoring the previous state.
func setupTestServices() func() {
	oldAsk := askService
	oldIndex := indexService

	askService = &mockAskService{
		answer: &domain.Answer{
			Text: "A mock answer.",
			Retrieved: []domain.RetrievedChunk{
				{Content: "mock chunk", Filename: "notes.txt", ChunkIndex: 0, Distance: 0.125},
			},
		},
	}
	indexService = &mockIndexService{
		report: &domain.IndexReport{FilesProcessed: 2, ChunksTotal: 7},
	}

	return func() {
		askService = oldAsk
		indexService = oldIndex
	}
}
