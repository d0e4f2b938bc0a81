// ABOUTME: Answer synthesizer building the grounding prompt and invoking generation
// ABOUTME: Returns the model's raw response unmodified; no retry, no content validation
package core

import (
	"context"
	"fmt"

	"github.com/docnexus/docnexus/internal/llm"
	"github.com/docnexus/docnexus/internal/models"
)

// Generator is the external text-generation capability
type Generator interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns retrieved chunks plus a query into one grounded answer
type Synthesizer struct {
	generator Generator
}

// NewSynthesizer creates a Synthesizer over the generation capability
func NewSynthesizer(generator Generator) *Synthesizer {
	return &Synthesizer{generator: generator}
}

// Synthesize builds the grounding prompt from the chunks (in the order
// received) and the literal query, executes it, and returns the raw answer
// text. Free-form output is not structurally checkable, so it is passed
// through as-is.
func (s *Synthesizer) Synthesize(ctx context.Context, chunks []models.RetrievedChunk, query string) (string, error) {
	prompt := llm.GroundingPrompt(chunks, query)

	answer, err := s.generator.GenerateAnswer(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating answer: %w", err)
	}
	return answer, nil
}
