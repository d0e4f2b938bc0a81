// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Provides verbose/quiet/format flags shared by all subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  ██████╗  ██████╗███╗   ██╗███████╗██╗  ██╗██╗   ██╗███████╗
██╔══██╗██╔═══██╗██╔════╝████╗  ██║██╔════╝╚██╗██╔╝██║   ██║██╔════╝
██║  ██║██║   ██║██║     ██╔██╗ ██║█████╗   ╚███╔╝ ██║   ██║███████╗
██║  ██║██║   ██║██║     ██║╚██╗██║██╔══╝   ██╔██╗ ██║   ██║╚════██║
██████╔╝╚██████╔╝╚██████╗██║ ╚████║███████╗██╔╝ ██╗╚██████╔╝███████║
╚═════╝  ╚═════╝  ╚═════╝╚═╝  ╚═══╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docnexus",
		Short: "Ingest PDFs and answer questions grounded in them",
		Long: banner + `
DocNexus ingests PDF documents, enriches them with embeddings and
sentiment, and answers natural-language questions grounded in the
stored corpus via MongoDB Atlas vector search.

Requires MONGODB_URI and OPENAI_API_KEY (via environment or .env).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json, table")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewQueryCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
