// ABOUTME: CLI command to ask a question grounded in the corpus
// ABOUTME: Embeds the query, retrieves top matches, and synthesizes an answer
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <question>",
		Short: "Ask a question grounded in the ingested documents",
		Long: `Ask a question grounded in the ingested documents.

The question is embedded, the most similar documents are retrieved by
vector search, and an answer is synthesized from their content only.
If the corpus has nothing relevant, the answer says so.

Examples:
  docnexus query "What was the quarterly revenue?"
  docnexus query --format json "Who signed the contract?"`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	application, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	result, err := application.query.Query(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("running query: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Answer)

	if verbose && len(result.Data) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SOURCE\tSENTIMENT\tPREVIEW\n")
		fmt.Fprintf(w, "------\t---------\t-------\n")
		for _, chunk := range result.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				truncate(chunk.OriginalName, 30),
				chunk.Sentiment,
				truncate(chunk.Content, 60))
		}
		w.Flush()
	}

	return nil
}
