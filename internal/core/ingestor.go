// ABOUTME: Ingestion orchestrator driving one file through validate, extract, enrich, persist
// ABOUTME: Applies the bounded retry policy and converts all failures into one result shape
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/docnexus/docnexus/internal/models"
	"github.com/docnexus/docnexus/internal/pdf"
	"github.com/docnexus/docnexus/internal/util"
)

// DocumentStore is the persistence capability the orchestrator writes to
type DocumentStore interface {
	Insert(ctx context.Context, doc *models.Document) error
}

// TextExtractor is the extraction adapter boundary
type TextExtractor interface {
	Extract(buf []byte) (pdf.Extraction, error)
}

// IngestError reports a failed ingestion run with the attempts it consumed
type IngestError struct {
	Filename string
	Attempts int
	Err      error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// Ingestor processes one uploaded file at a time. Exactly one persistence
// write happens per successful run, and only after validation, extraction,
// and enrichment have all succeeded.
type Ingestor struct {
	extractor TextExtractor
	enricher  *Enricher
	store     DocumentStore
	retry     util.Policy
}

// NewIngestor creates an Ingestor with the given retry bound. The policy
// retries only extraction-capability failures; structural and enrichment
// failures terminate the run on their first occurrence.
func NewIngestor(extractor TextExtractor, enricher *Enricher, store DocumentStore, maxRetries int, retryDelay time.Duration) *Ingestor {
	return &Ingestor{
		extractor: extractor,
		enricher:  enricher,
		store:     store,
		retry: util.Policy{
			MaxAttempts: maxRetries,
			BaseDelay:   retryDelay,
			Retryable:   retryableIngestError,
		},
	}
}

// retryableIngestError holds the retry classification for the whole
// pipeline: only a transient extraction-capability failure is worth another
// attempt.
func retryableIngestError(err error) bool {
	var extractionErr *pdf.ExtractionError
	return errors.As(err, &extractionErr)
}

// Ingest runs the full pipeline for one file. On success it returns the
// persisted document; on failure it returns an *IngestError carrying the
// filename, the last error, and the attempts used.
func (in *Ingestor) Ingest(ctx context.Context, file models.UploadFile) (*models.Document, error) {
	// A started run finishes (success or exhausted retries) even if the
	// uploading caller has gone away.
	ctx = context.WithoutCancel(ctx)

	maxAttempts := in.retry.MaxAttempts

	var doc *models.Document
	attempts, err := in.retry.Do(func(attempt int) error {
		log.Printf("[ingest] processing %s - attempt %d/%d", file.OriginalName, attempt, maxAttempts)

		if err := pdf.Validate(file.Buffer); err != nil {
			return err
		}

		extraction, err := in.extractor.Extract(file.Buffer)
		if err != nil {
			return err
		}

		enrichment, err := in.enricher.Enrich(ctx, extraction.Text)
		if err != nil {
			return err
		}

		candidate := &models.Document{
			Filename:     file.OriginalName,
			OriginalName: file.OriginalName,
			Content:      extraction.Text,
			Sentiment:    enrichment.Sentiment,
			Embedding:    enrichment.Embedding,
			Metadata: models.DocumentMetadata{
				PageCount:          extraction.PageCount,
				ProcessingAttempts: attempt,
			},
		}

		if err := in.store.Insert(ctx, candidate); err != nil {
			return fmt.Errorf("persisting document: %w", err)
		}

		doc = candidate
		return nil
	})

	if err != nil {
		log.Printf("[ingest] %s failed after %d attempt(s): %v", file.OriginalName, attempts, err)
		return nil, &IngestError{Filename: file.OriginalName, Attempts: attempts, Err: err}
	}

	log.Printf("[ingest] successfully processed %s on attempt %d", file.OriginalName, attempts)
	return doc, nil
}
