// ABOUTME: Batch coordinator fanning a multi-file upload across ingestion runs
// ABOUTME: Isolated failure domains; one file's failure never affects its siblings
package core

import (
	"context"
	"errors"
	"sync"

	"github.com/docnexus/docnexus/internal/models"
)

// BatchCoordinator runs one Ingestor per uploaded file, concurrently
type BatchCoordinator struct {
	ingestor *Ingestor
}

// NewBatchCoordinator creates a coordinator over the given Ingestor
func NewBatchCoordinator(ingestor *Ingestor) *BatchCoordinator {
	return &BatchCoordinator{ingestor: ingestor}
}

// IngestBatch processes every file concurrently and aggregates per-file
// outcomes. Each run owns its own backoff waits, so one slow or failing file
// never delays or cancels the others. Order within each result slice is
// completion order, not input order.
func (b *BatchCoordinator) IngestBatch(ctx context.Context, files []models.UploadFile) models.BatchResult {
	result := models.BatchResult{
		Successful: []models.Document{},
		Failed:     []models.IngestFailure{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		go func(file models.UploadFile) {
			defer wg.Done()

			doc, err := b.ingestor.Ingest(ctx, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, toIngestFailure(file, err))
				return
			}
			result.Successful = append(result.Successful, *doc)
		}(file)
	}

	wg.Wait()
	return result
}

// toIngestFailure shapes any ingestion error into the per-file failure entry
func toIngestFailure(file models.UploadFile, err error) models.IngestFailure {
	var ingestErr *IngestError
	if errors.As(err, &ingestErr) {
		return models.IngestFailure{
			Filename: ingestErr.Filename,
			Error:    ingestErr.Err.Error(),
			Attempts: ingestErr.Attempts,
		}
	}
	return models.IngestFailure{
		Filename: file.OriginalName,
		Error:    err.Error(),
		Attempts: 1,
	}
}
