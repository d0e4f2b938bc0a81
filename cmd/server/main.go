// ABOUTME: Main entry point for the DocNexus HTTP server
// ABOUTME: Wires config, MongoDB, OpenAI, and the ingestion/query pipeline
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docnexus/docnexus/internal/api"
	"github.com/docnexus/docnexus/internal/config"
	"github.com/docnexus/docnexus/internal/core"
	"github.com/docnexus/docnexus/internal/llm"
	"github.com/docnexus/docnexus/internal/pdf"
	"github.com/docnexus/docnexus/internal/storage"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - enrichment and search will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	store, err := storage.Connect(ctx, storage.Config{
		URI:         cfg.MongoURI,
		Database:    cfg.Database,
		Collection:  cfg.Collection,
		VectorIndex: cfg.VectorIndex,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}()

	client, err := llm.NewClient(llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	// Wire the ingestion pipeline
	extractor := pdf.NewExtractor(pdf.PlainTextCapability{})
	enricher := core.NewEnricher(client, client)
	ingestor := core.NewIngestor(extractor, enricher, store, cfg.MaxRetries, cfg.RetryDelay)
	batch := core.NewBatchCoordinator(ingestor)

	// Wire the query pipeline
	retrieval := core.NewRetrievalEngine(store, cfg.TopK)
	synthesizer := core.NewSynthesizer(client)
	query := core.NewQueryService(client, retrieval, synthesizer)

	server := api.NewServer(batch, query, store, cfg.MaxFileSize, cfg.MaxBatchFiles)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      server.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.ListenAndServe()
	}()

	log.Printf("DocNexus server listening on :%d", cfg.Port)

	select {
	case <-ctx.Done():
		log.Println("Shutdown signal received, gracefully shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}
}
