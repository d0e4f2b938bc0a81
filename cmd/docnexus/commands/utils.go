// ABOUTME: Shared utility functions and dependency wiring for CLI commands
// ABOUTME: Consolidates pipeline construction used by serve, ingest, query, and mcp
package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docnexus/docnexus/internal/config"
	"github.com/docnexus/docnexus/internal/core"
	"github.com/docnexus/docnexus/internal/llm"
	"github.com/docnexus/docnexus/internal/pdf"
	"github.com/docnexus/docnexus/internal/storage"
	openai "github.com/sashabaranov/go-openai"
)

// app holds the wired pipeline shared by commands that touch the corpus
type app struct {
	cfg   *config.Config
	store *storage.Store
	batch *core.BatchCoordinator
	query *core.QueryService
}

// newApp loads configuration and wires the full ingestion and query
// pipeline against MongoDB and OpenAI.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	store, err := storage.Connect(ctx, storage.Config{
		URI:         cfg.MongoURI,
		Database:    cfg.Database,
		Collection:  cfg.Collection,
		VectorIndex: cfg.VectorIndex,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	client, err := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if cerr := store.Close(closeCtx); cerr != nil {
			log.Printf("[app] error closing store: %v", cerr)
		}
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	extractor := pdf.NewExtractor(pdf.PlainTextCapability{})
	enricher := core.NewEnricher(client, client)
	ingestor := core.NewIngestor(extractor, enricher, store, cfg.MaxRetries, cfg.RetryDelay)
	batch := core.NewBatchCoordinator(ingestor)

	retrieval := core.NewRetrievalEngine(store, cfg.TopK)
	synthesizer := core.NewSynthesizer(client)
	query := core.NewQueryService(client, retrieval, synthesizer)

	return &app{
		cfg:   cfg,
		store: store,
		batch: batch,
		query: query,
	}, nil
}

// Close releases the MongoDB connection
func (a *app) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.store.Close(ctx); err != nil {
		log.Printf("[app] error closing store: %v", err)
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	} else if diff < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	} else if diff < 7*24*time.Hour {
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	return t.Format("2006-01-02")
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
