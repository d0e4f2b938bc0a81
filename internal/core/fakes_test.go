// ABOUTME: Hand-written fakes for the external capabilities consumed by core
// ABOUTME: Shared across ingestion, batch, retrieval, and query tests
package core

import (
	"bytes"
	"context"
	"sync"

	"github.com/docnexus/docnexus/internal/models"
	"github.com/docnexus/docnexus/internal/pdf"
)

// validPDFBytes builds a buffer that passes structural validation
func validPDFBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n")
	buf.Write(bytes.Repeat([]byte("x"), 200))
	buf.WriteString("\n%%EOF\n")
	return buf.Bytes()
}

type fakeExtractor struct {
	mu    sync.Mutex
	out   pdf.Extraction
	errs  []error // consumed one per call; nil entry means success
	calls int
}

func (f *fakeExtractor) Extract(buf []byte) (pdf.Extraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return pdf.Extraction{}, err
		}
	}
	return f.out, nil
}

type fakeEmbedder struct {
	mu      sync.Mutex
	vector  []float64
	err     error
	calls   int
	gotText string
}

func (f *fakeEmbedder) GenerateEmbedding(ctx context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

type fakeClassifier struct {
	mu    sync.Mutex
	label string
	err   error
	calls int
}

func (f *fakeClassifier) ClassifySentiment(ctx context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.label, nil
}

type fakeStore struct {
	mu   sync.Mutex
	err  error
	docs []models.Document
}

func (f *fakeStore) Insert(ctx context.Context, doc *models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeStore) inserted() []models.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Document(nil), f.docs...)
}

type fakeSearcher struct {
	chunks    []models.RetrievedChunk
	err       error
	gotK      int
	gotVector []float64
}

func (f *fakeSearcher) VectorSearch(ctx context.Context, queryVector []float64, k int) ([]models.RetrievedChunk, error) {
	f.gotK = k
	f.gotVector = queryVector
	if f.err != nil {
		return nil, f.err
	}
	return f.chunks, nil
}

type fakeGenerator struct {
	answer    string
	err       error
	gotPrompt string
}

func (f *fakeGenerator) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// workingEnricher builds an Enricher whose capabilities always succeed
func workingEnricher() *Enricher {
	return NewEnricher(
		&fakeEmbedder{vector: []float64{0.1, 0.2, 0.3}},
		&fakeClassifier{label: "neutral"},
	)
}
