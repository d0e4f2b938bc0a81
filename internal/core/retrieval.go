// ABOUTME: Retrieval engine shaping vector-search queries against the store
// ABOUTME: Caps results at top-K; search failures are fatal for the request
package core

import (
	"context"
	"fmt"

	"github.com/docnexus/docnexus/internal/models"
)

// VectorSearcher is the external vector-similarity search capability
type VectorSearcher interface {
	VectorSearch(ctx context.Context, queryVector []float64, k int) ([]models.RetrievedChunk, error)
}

// DefaultTopK is how many related documents a query retrieves by default
const DefaultTopK = 3

// RetrievalEngine returns the documents most similar to a query embedding.
// Nearest-neighbor comparison is delegated entirely to the searcher; this
// engine only shapes the query and bounds the result.
type RetrievalEngine struct {
	searcher VectorSearcher
	topK     int
}

// NewRetrievalEngine creates an engine returning at most topK chunks per
// query; topK < 1 falls back to DefaultTopK.
func NewRetrievalEngine(searcher VectorSearcher, topK int) *RetrievalEngine {
	if topK < 1 {
		topK = DefaultTopK
	}
	return &RetrievalEngine{searcher: searcher, topK: topK}
}

// Retrieve returns up to topK chunks ordered by descending similarity,
// possibly empty when the corpus is empty. Search failures are never
// retried.
func (r *RetrievalEngine) Retrieve(ctx context.Context, queryEmbedding []float64) ([]models.RetrievedChunk, error) {
	chunks, err := r.searcher.VectorSearch(ctx, queryEmbedding, r.topK)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	if len(chunks) > r.topK {
		chunks = chunks[:r.topK]
	}
	return chunks, nil
}
