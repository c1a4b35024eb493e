// Package cli implements the askdocs command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arkestra-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/arkestra-labs/askdocs-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Populated lazily from configuration on
// first use; tests inject mocks directly.
var (
	askService   driving.AskService
	indexService driving.IndexService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "askdocs",
	Short: "Ask questions about your local documents",
	Long: `askdocs indexes a directory of plain-text documents into a local
vector store and answers questions about them using retrieval-augmented
generation against a local or cloud LLM.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
