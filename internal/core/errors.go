// ABOUTME: Closed set of enrichment failure variants
// ABOUTME: Retryability is decided on these tags, never on message text
package core

import "errors"

// Enrichment failures. A failed or malformed model response is treated as
// deterministic, so none of these are retried.
var (
	ErrEmbeddingFailed  = errors.New("failed to generate embedding")
	ErrSentimentFailed  = errors.New("failed to analyze sentiment")
	ErrInvalidEmbedding = errors.New("invalid embedding received from model")
	ErrInvalidSentiment = errors.New("invalid sentiment value received from model")
)
