// ABOUTME: Enrichment adapter running embedding and sentiment calls concurrently
// ABOUTME: Joins two independent capability calls and validates their output shapes
package core

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/docnexus/docnexus/internal/models"
)

// Embedder is the external embedding capability
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float64, error)
}

// SentimentClassifier is the external sentiment-classification capability
type SentimentClassifier interface {
	ClassifySentiment(ctx context.Context, text string) (string, error)
}

// Enrichment is the joint result of both capability calls
type Enrichment struct {
	Embedding []float64
	Sentiment models.Sentiment
}

// Enricher issues the embedding and sentiment calls concurrently; both must
// succeed. There is no shared state between the two calls, only a join point.
type Enricher struct {
	embedder   Embedder
	classifier SentimentClassifier
}

// NewEnricher creates an Enricher over the two capabilities
func NewEnricher(embedder Embedder, classifier SentimentClassifier) *Enricher {
	return &Enricher{embedder: embedder, classifier: classifier}
}

// Enrich computes the embedding and sentiment for text. Either call's
// failure short-circuits the pair. All failures carry one of the tagged
// variants from errors.go.
func (e *Enricher) Enrich(ctx context.Context, text string) (Enrichment, error) {
	var enrichment Enrichment

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vector, err := e.embedder.GenerateEmbedding(gctx, text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEmbeddingFailed, err)
		}
		if err := validateEmbedding(vector); err != nil {
			return err
		}
		enrichment.Embedding = vector
		return nil
	})

	g.Go(func() error {
		raw, err := e.classifier.ClassifySentiment(gctx, text)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSentimentFailed, err)
		}
		sentiment, ok := models.ParseSentiment(raw)
		if !ok {
			return fmt.Errorf("%w: %q", ErrInvalidSentiment, raw)
		}
		enrichment.Sentiment = sentiment
		return nil
	})

	if err := g.Wait(); err != nil {
		return Enrichment{}, err
	}
	return enrichment, nil
}

// validateEmbedding rejects empty vectors and non-finite elements
func validateEmbedding(vector []float64) error {
	if len(vector) == 0 {
		return ErrInvalidEmbedding
	}
	for i, v := range vector {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value at index %d", ErrInvalidEmbedding, i)
		}
	}
	return nil
}
