package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arkestra-labs/askdocs-cli/internal/chunker"
	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/arkestra-labs/askdocs-cli/internal/logger"
	"github.com/arkestra-labs/askdocs-cli/internal/retry"
)

// Ensure Indexer implements the interface.
var _ driving.IndexService = (*Indexer)(nil)

// Default indexer configuration.
const (
	// DefaultJobs is the number of concurrent file workers.
	DefaultJobs = 4

	// DefaultStoreAttempts bounds the store-readiness wait.
	DefaultStoreAttempts = 30

	// DefaultStoreRetryDelay is the fixed delay between readiness attempts.
	DefaultStoreRetryDelay = 2 * time.Second
)

// IndexerConfig holds indexer tuning parameters.
type IndexerConfig struct {
	// Jobs is the number of concurrent file workers (default: 4).
	Jobs int

	// StoreAttempts is the maximum number of readiness checks before the
	// run aborts with ErrStoreUnavailable (default: 30).
	StoreAttempts int

	// StoreRetryDelay is the delay between readiness checks (default: 2s).
	StoreRetryDelay time.Duration
}

// Indexer rebuilds the vector store from the corpus: full-corpus
// semantics, so every reindex clears prior records before inserting.
type Indexer struct {
	corpus           driven.Corpus
	processor        *chunker.Processor
	embeddingService driven.EmbeddingService
	store            driven.VectorStore
	cfg              IndexerConfig
}

// NewIndexer creates a new indexer.
func NewIndexer(
	corpus driven.Corpus,
	processor *chunker.Processor,
	embeddingService driven.EmbeddingService,
	store driven.VectorStore,
	cfg IndexerConfig,
) *Indexer {
	if cfg.Jobs <= 0 {
		cfg.Jobs = DefaultJobs
	}
	if cfg.StoreAttempts <= 0 {
		cfg.StoreAttempts = DefaultStoreAttempts
	}
	if cfg.StoreRetryDelay <= 0 {
		cfg.StoreRetryDelay = DefaultStoreRetryDelay
	}

	return &Indexer{
		corpus:           corpus,
		processor:        processor,
		embeddingService: embeddingService,
		store:            store,
		cfg:              cfg,
	}
}

// Reindex clears the store and repopulates it from every supported
// document in the corpus. Files are processed by a bounded worker pool;
// the store is the single point of serialisation. Per-file failures are
// collected into the report and do not abort the run.
func (x *Indexer) Reindex(ctx context.Context) (*domain.IndexReport, error) {
	logger.Section("Reindex")

	if err := x.corpus.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate corpus: %w", err)
	}

	// Fail before clearing anything if embeddings cannot be produced.
	if err := x.embeddingService.Ping(ctx); err != nil {
		return nil, fmt.Errorf("embedding service: %w", err)
	}

	// Wait for the store to become reachable. If the budget is exhausted
	// nothing has been touched: no partial state.
	logger.Debug("Waiting for vector store (up to %d attempts)", x.cfg.StoreAttempts)
	err := retry.Do(ctx, uint64(x.cfg.StoreAttempts), x.cfg.StoreRetryDelay, func(ctx context.Context) error {
		return x.store.Ping(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	// Full-corpus semantics: clear immediately before insertion begins so
	// the empty window is bounded by the reindex itself.
	if err := x.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear store: %w", err)
	}
	logger.Info("Cleared existing records")

	docs, corpusErrs := x.corpus.Documents(ctx)

	report := &domain.IndexReport{}
	var mu sync.Mutex

	// Collect per-file read failures from discovery.
	var collectorWG sync.WaitGroup
	collectorWG.Add(1)
	go func() {
		defer collectorWG.Done()
		for err := range corpusErrs {
			mu.Lock()
			if ff, ok := err.(*domain.FileFailure); ok {
				report.Failures = append(report.Failures, ff)
			} else {
				report.Failures = append(report.Failures, &domain.FileFailure{Filename: "", Err: err})
			}
			mu.Unlock()
			logger.Warn("Discovery: %v", err)
		}
	}()

	// Bounded worker pool over independent files.
	var workerWG sync.WaitGroup
	for i := 0; i < x.cfg.Jobs; i++ {
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			for doc := range docs {
				x.processFile(ctx, doc, report, &mu)
			}
		}()
	}

	workerWG.Wait()
	collectorWG.Wait()

	if count, err := x.store.Count(ctx); err == nil {
		logger.Debug("Store now holds %d records", count)
	}

	logger.Info("Reindex complete: %d files, %d chunks, %d failures",
		report.FilesProcessed, report.ChunksTotal, len(report.Failures))
	return report, nil
}

// processFile chunks, embeds and inserts one document. Failures are
// recorded in the report; they never abort the run.
func (x *Indexer) processFile(ctx context.Context, doc domain.Document, report *domain.IndexReport, mu *sync.Mutex) {
	if strings.TrimSpace(doc.Content) == "" {
		logger.Warn("Empty file skipped: %s", doc.Filename)
		return
	}

	chunks := x.processor.Split(doc.Content)
	logger.Debug("Created %d chunks from %s", len(chunks), doc.Filename)

	embeddings, err := x.embeddingService.EmbedBatch(ctx, chunks)
	if err != nil {
		x.recordFailure(report, mu, doc.Filename, err)
		return
	}

	records := make([]domain.EmbeddingRecord, len(chunks))
	for i, chunk := range chunks {
		records[i] = domain.EmbeddingRecord{
			ID:         uuid.New().String(),
			Filename:   doc.Filename,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  embeddings[i],
		}
	}

	if err := x.store.Insert(ctx, records); err != nil {
		x.recordFailure(report, mu, doc.Filename, err)
		return
	}

	mu.Lock()
	report.FilesProcessed++
	report.ChunksTotal += len(records)
	mu.Unlock()
	logger.Debug("Indexed %s (%d chunks)", doc.Filename, len(records))
}

// recordFailure appends a per-file failure to the report.
func (x *Indexer) recordFailure(report *domain.IndexReport, mu *sync.Mutex, filename string, err error) {
	mu.Lock()
	report.Failures = append(report.Failures, &domain.FileFailure{Filename: filename, Err: err})
	mu.Unlock()
	logger.Warn("Error processing %s: %v", filename, err)
}
