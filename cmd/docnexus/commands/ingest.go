// ABOUTME: CLI command to ingest local PDF files into the corpus
// ABOUTME: Runs the same concurrent pipeline as the HTTP upload endpoint
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docnexus/docnexus/internal/models"
	"github.com/joho/godotenv"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <file.pdf> [file.pdf...]",
		Short: "Ingest PDF files into the corpus",
		Long: `Ingest one or more PDF files into the corpus.

Each file is validated, its text extracted, enriched with an embedding
and a sentiment label, and persisted. Files are processed concurrently;
one bad file never blocks the others.

Examples:
  docnexus ingest report.pdf
  docnexus ingest docs/*.pdf
  docnexus ingest --format json quarterly.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	files := make([]models.UploadFile, 0, len(args))
	for _, path := range args {
		buf, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		files = append(files, models.UploadFile{
			OriginalName: filepath.Base(path),
			MimeType:     "application/pdf",
			Buffer:       buf,
		})
	}

	application, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer application.Close()

	result := application.batch.IngestBatch(cmd.Context(), files)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FILE\tSTATUS\tSENTIMENT\tPAGES\tATTEMPTS\n")
	fmt.Fprintf(w, "----\t------\t---------\t-----\t--------\n")
	for _, doc := range result.Successful {
		fmt.Fprintf(w, "%s\tok\t%s\t%d\t%d\n",
			truncate(doc.OriginalName, 40),
			doc.Sentiment,
			doc.Metadata.PageCount,
			doc.Metadata.ProcessingAttempts)
	}
	for _, failure := range result.Failed {
		fmt.Fprintf(w, "%s\tfailed\t-\t-\t%d\n",
			truncate(failure.Filename, 40),
			failure.Attempts)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d ingested, %d failed\n",
			len(result.Successful), len(result.Failed))
		for _, failure := range result.Failed {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", failure.Filename, failure.Error)
		}
	}

	if len(result.Successful) == 0 && len(result.Failed) > 0 {
		return fmt.Errorf("all %d file(s) failed to ingest", len(result.Failed))
	}
	return nil
}
