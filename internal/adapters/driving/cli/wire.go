package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/config/file"
	ollamaembed "github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/embedding/ollama"
	openaiembed "github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/embedding/openai"
	ollamallm "github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/llm/ollama"
	openaillm "github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/llm/openai"
	"github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/storage/memory"
	"github.com/arkestra-labs/askdocs-cli/internal/adapters/driven/storage/sqlite"
	"github.com/arkestra-labs/askdocs-cli/internal/chunker"
	"github.com/arkestra-labs/askdocs-cli/internal/connectors/filesystem"
	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/arkestra-labs/askdocs-cli/internal/core/services"
	"github.com/arkestra-labs/askdocs-cli/internal/logger"
)

// Configuration keys read from ~/.askdocs/config.toml. Flags override.
const (
	keyProvider       = "ai.provider"
	keyOllamaBaseURL  = "ollama.base_url"
	keyOpenAIAPIKey   = "openai.api_key"
	keyOpenAIBaseURL  = "openai.base_url"
	keyEmbeddingModel = "embedding.model"
	keyEmbeddingDims  = "embedding.dimensions"
	keyLLMModel       = "llm.model"
	keyStoreBackend   = "store.backend"
	keyStoreDir       = "store.dir"
	keyCorpusDir      = "corpus.dir"
)

// loadConfig opens the config store at ~/.askdocs. A missing file is fine;
// every key has a default.
func loadConfig() (driven.ConfigStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return file.NewConfigStore(filepath.Join(home, ".askdocs"))
}

// provider resolves the configured AI provider, defaulting to Ollama.
func provider(cfg driven.ConfigStore) (domain.AIProvider, error) {
	p := domain.AIProvider(cfg.GetString(keyProvider))
	if p == "" {
		p = domain.AIProviderOllama
	}
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, p.String())
	}
	return p, nil
}

// buildEmbeddingService constructs the embedding adapter for the configured
// provider.
func buildEmbeddingService(cfg driven.ConfigStore) (driven.EmbeddingService, error) {
	p, err := provider(cfg)
	if err != nil {
		return nil, err
	}

	switch p {
	case domain.AIProviderOpenAI:
		return openaiembed.NewEmbeddingService(openaiembed.Config{
			APIKey:     cfg.GetString(keyOpenAIAPIKey),
			BaseURL:    cfg.GetString(keyOpenAIBaseURL),
			Model:      cfg.GetString(keyEmbeddingModel),
			Dimensions: cfg.GetInt(keyEmbeddingDims),
		})
	default:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL:    cfg.GetString(keyOllamaBaseURL),
			Model:      cfg.GetString(keyEmbeddingModel),
			Dimensions: cfg.GetInt(keyEmbeddingDims),
		}), nil
	}
}

// buildLLMService constructs the LLM adapter for the configured provider.
// A non-empty model overrides the configured one.
func buildLLMService(cfg driven.ConfigStore, model string) (driven.LLMService, error) {
	p, err := provider(cfg)
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = cfg.GetString(keyLLMModel)
	}

	switch p {
	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.Config{
			APIKey:  cfg.GetString(keyOpenAIAPIKey),
			BaseURL: cfg.GetString(keyOpenAIBaseURL),
			Model:   model,
		})
	default:
		return ollamallm.NewLLMService(ollamallm.Config{
			BaseURL: cfg.GetString(keyOllamaBaseURL),
			Model:   model,
		}), nil
	}
}

// buildVectorStore constructs the configured store backend. The sqlite
// backend is the default; memory is useful for throwaway experiments.
func buildVectorStore(cfg driven.ConfigStore, dimensions int) (driven.VectorStore, error) {
	backend := domain.StoreBackend(cfg.GetString(keyStoreBackend))
	if backend == "" {
		backend = domain.StoreBackendSQLite
	}
	if !backend.IsValid() {
		return nil, fmt.Errorf("%w: unknown store backend %q", domain.ErrInvalidInput, backend.String())
	}

	if backend == domain.StoreBackendMemory {
		return memory.NewVectorStore(dimensions)
	}
	return sqlite.NewVectorStore(cfg.GetString(keyStoreDir), dimensions)
}

// configureAskService wires the ask path from configuration. No-op when a
// service is already injected.
func configureAskService(model string) error {
	if askService != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	embedder, err := buildEmbeddingService(cfg)
	if err != nil {
		return err
	}
	llm, err := buildLLMService(cfg, model)
	if err != nil {
		return err
	}
	store, err := buildVectorStore(cfg, embedder.Dimensions())
	if err != nil {
		return err
	}

	logger.Debug("Configured ask: provider embeddings %s, model %s", embedder.ModelName(), llm.ModelName())
	askService = services.NewAskService(services.NewRetriever(embedder, store), llm)
	return nil
}

// configureIndexService wires the index path from configuration and flags.
// No-op when a service is already injected.
func configureIndexService(dataDir string, chunkSize, overlap, jobs int) error {
	if indexService != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if dataDir == "" {
		dataDir = cfg.GetString(keyCorpusDir)
	}
	if dataDir == "" {
		dataDir = "."
	}

	embedder, err := buildEmbeddingService(cfg)
	if err != nil {
		return err
	}
	store, err := buildVectorStore(cfg, embedder.Dimensions())
	if err != nil {
		return err
	}

	proc := chunker.New(
		chunker.WithChunkSize(chunkSize),
		chunker.WithOverlap(overlap),
	)

	logger.Debug("Configured index: corpus %s, chunk size %d, overlap %d, jobs %d",
		dataDir, proc.ChunkSize(), proc.Overlap(), jobs)
	indexService = services.NewIndexer(filesystem.New(dataDir), proc, embedder, store, services.IndexerConfig{
		Jobs: jobs,
	})
	return nil
}
