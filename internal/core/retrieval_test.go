// ABOUTME: Tests for the retrieval engine's query shaping and result bounding
// ABOUTME: Search failures surface directly; results never exceed top-K
package core

import (
	"context"
	"errors"
	"testing"

	"github.com/docnexus/docnexus/internal/models"
)

func TestRetrievalEngine_PassesQueryAndK(t *testing.T) {
	searcher := &fakeSearcher{chunks: []models.RetrievedChunk{{ID: "1"}}}
	engine := NewRetrievalEngine(searcher, 3)

	vector := []float64{0.1, 0.2}
	chunks, err := engine.Retrieve(context.Background(), vector)
	if err != nil {
		t.Fatalf("Retrieve() error = %v, want nil", err)
	}

	if searcher.gotK != 3 {
		t.Errorf("searcher received k = %d, want 3", searcher.gotK)
	}
	if len(searcher.gotVector) != 2 {
		t.Errorf("searcher received vector of length %d, want 2", len(searcher.gotVector))
	}
	if len(chunks) != 1 {
		t.Errorf("chunks = %d, want 1", len(chunks))
	}
}

func TestRetrievalEngine_CapsResultsAtTopK(t *testing.T) {
	searcher := &fakeSearcher{chunks: []models.RetrievedChunk{
		{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
	}}
	engine := NewRetrievalEngine(searcher, 3)

	chunks, err := engine.Retrieve(context.Background(), []float64{1})
	if err != nil {
		t.Fatalf("Retrieve() error = %v, want nil", err)
	}

	if len(chunks) != 3 {
		t.Fatalf("chunks = %d, want at most k (3)", len(chunks))
	}
	// Rank order preserved
	for i, want := range []string{"1", "2", "3"} {
		if chunks[i].ID != want {
			t.Errorf("chunks[%d].ID = %q, want %q", i, chunks[i].ID, want)
		}
	}
}

func TestRetrievalEngine_EmptyCorpus(t *testing.T) {
	engine := NewRetrievalEngine(&fakeSearcher{chunks: []models.RetrievedChunk{}}, 3)

	chunks, err := engine.Retrieve(context.Background(), []float64{1})
	if err != nil {
		t.Fatalf("Retrieve() error = %v, want nil", err)
	}
	if len(chunks) != 0 {
		t.Errorf("chunks = %d, want 0 for empty corpus", len(chunks))
	}
}

func TestRetrievalEngine_SearchFailureIsFatal(t *testing.T) {
	cause := errors.New("index unavailable")
	engine := NewRetrievalEngine(&fakeSearcher{err: cause}, 3)

	_, err := engine.Retrieve(context.Background(), []float64{1})
	if !errors.Is(err, cause) {
		t.Errorf("Retrieve() error = %v, want wrapped %v", err, cause)
	}
}

func TestNewRetrievalEngine_DefaultTopK(t *testing.T) {
	searcher := &fakeSearcher{}
	engine := NewRetrievalEngine(searcher, 0)

	_, _ = engine.Retrieve(context.Background(), []float64{1})
	if searcher.gotK != DefaultTopK {
		t.Errorf("k = %d, want DefaultTopK (%d)", searcher.gotK, DefaultTopK)
	}
}
