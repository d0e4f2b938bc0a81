// ABOUTME: Query service composing embed, retrieve, and synthesize into one unit
// ABOUTME: Any stage failure fails the whole request; there is no partial response
package core

import (
	"context"
	"fmt"

	"github.com/docnexus/docnexus/internal/models"
)

// QueryService answers natural-language queries against the stored corpus
type QueryService struct {
	embedder    Embedder
	retrieval   *RetrievalEngine
	synthesizer *Synthesizer
}

// NewQueryService wires the three stages of the query pipeline
func NewQueryService(embedder Embedder, retrieval *RetrievalEngine, synthesizer *Synthesizer) *QueryService {
	return &QueryService{
		embedder:    embedder,
		retrieval:   retrieval,
		synthesizer: synthesizer,
	}
}

// Query embeds the text, retrieves the most related chunks, and synthesizes
// an answer from them. The response carries the original query, the answer,
// and the retrieved chunks for caller-side display.
func (q *QueryService) Query(ctx context.Context, text string) (*models.QueryResult, error) {
	queryEmbedding, err := q.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	chunks, err := q.retrieval.Retrieve(ctx, queryEmbedding)
	if err != nil {
		return nil, err
	}

	answer, err := q.synthesizer.Synthesize(ctx, chunks, text)
	if err != nil {
		return nil, err
	}

	return &models.QueryResult{
		Query:  text,
		Answer: answer,
		Data:   chunks,
	}, nil
}
