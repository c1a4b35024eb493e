package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arkestra-labs/askdocs-cli/internal/core/domain"
	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
)

var (
	askLimit int
	askModel string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your indexed documents",
	Long: `Answers a free-text question using retrieval-augmented generation.
Retrieves the most relevant indexed chunks, builds a grounded prompt and
asks the configured LLM. Use --verbose to see which chunks were used.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", 5, "maximum number of context chunks")
	askCmd.Flags().StringVar(&askModel, "model", "", "LLM model name (overrides config)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if err := configureAskService(askModel); err != nil {
		return fmt.Errorf("configure services: %w", err)
	}

	answer, err := askService.Ask(context.Background(), question, driving.AskOptions{
		Limit: askLimit,
	})
	if err != nil {
		return askUserError(err)
	}

	if answer.NoContext {
		cmd.Println("No documents found. Run 'askdocs index' first to index your documents.")
		return nil
	}

	if verbose {
		cmd.Println("Context:")
		for i, c := range answer.Retrieved {
			cmd.Printf("  %d. %s[%d] (distance: %.3f)\n", i+1, c.Filename, c.ChunkIndex, c.Distance)
		}
		cmd.Println()
	}

	cmd.Println(answer.Text)
	return nil
}

// askUserError maps a failed ask to a categorized user-facing message.
func askUserError(err error) error {
	var svcErr *domain.LLMServiceError
	switch {
	case errors.Is(err, domain.ErrLLMUnreachable):
		return fmt.Errorf("cannot connect to the LLM service; is it running?")
	case errors.Is(err, domain.ErrLLMTimeout):
		return fmt.Errorf("the LLM did not respond in time; try again or use a smaller model")
	case errors.As(err, &svcErr):
		return fmt.Errorf("the LLM service returned an error (status %d)", svcErr.Status)
	case errors.Is(err, domain.ErrEmbeddingUnavailable):
		return fmt.Errorf("the embedding service is unavailable; check your provider configuration")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("the vector store is unavailable")
	default:
		return fmt.Errorf("ask failed: %w", err)
	}
}
