package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkestra-labs/askdocs-cli/internal/chunker"
	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/services"
)

var (
	indexDataDir   string
	indexChunkSize int
	indexOverlap   int
	indexJobs      int
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the document index",
	Long: `Scans the document directory recursively, splits every supported
plain-text file into overlapping chunks, embeds them and rebuilds the
vector store from scratch. Previously indexed content is replaced.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexDataDir, "data-dir", "", "directory containing documents (overrides config)")
	indexCmd.Flags().IntVar(&indexChunkSize, "chunk-size", chunker.DefaultChunkSize, "chunk size in words")
	indexCmd.Flags().IntVar(&indexOverlap, "overlap", chunker.DefaultOverlap, "overlap between chunks in words")
	indexCmd.Flags().IntVar(&indexJobs, "jobs", services.DefaultJobs, "number of concurrent file workers")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := configureIndexService(indexDataDir, indexChunkSize, indexOverlap, indexJobs); err != nil {
		return fmt.Errorf("configure services: %w", err)
	}

	report, err := indexService.Reindex(context.Background())
	if err != nil {
		return indexUserError(err)
	}

	cmd.Printf("Indexed %d files (%d chunks).\n", report.FilesProcessed, report.ChunksTotal)

	if len(report.Failures) > 0 {
		cmd.Printf("%d files failed:\n", len(report.Failures))
		for _, f := range report.Failures {
			cmd.Printf("  %s: %v\n", f.Filename, f.Err)
		}
	}

	return nil
}

// indexUserError maps a failed reindex to a categorized user-facing message.
func indexUserError(err error) error {
	switch {
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("the vector store did not become available; check it is running and try again")
	case errors.Is(err, domain.ErrEmbeddingUnavailable):
		return fmt.Errorf("the embedding service is unavailable; check your provider configuration")
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("invalid document directory: %v", err)
	default:
		return fmt.Errorf("index failed: %w", err)
	}
}
