// ABOUTME: CLI command to list ingested documents
// ABOUTME: Shows sentiment, page counts, and processing attempts per document
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ingested documents",
		Long: `List ingested documents, most recent first.

Examples:
  docnexus list
  docnexus list --format json`,
		RunE: runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	application, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	docs, err := application.store.FindAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if len(docs) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No documents ingested yet")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNAME\tSENTIMENT\tPAGES\tUPLOADED\n")
	fmt.Fprintf(w, "--\t----\t---------\t-----\t--------\n")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			truncate(doc.ID, 12),
			truncate(doc.OriginalName, 35),
			doc.Sentiment,
			doc.Metadata.PageCount,
			formatTime(doc.UploadDate))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d document(s)\n", len(docs))
	}

	return nil
}
