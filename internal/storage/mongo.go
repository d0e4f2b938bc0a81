// ABOUTME: MongoDB-backed document store with Atlas vector search
// ABOUTME: Explicitly constructed and torn down by the process, never lazily connected
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docnexus/docnexus/internal/models"
)

// ErrNotFound is returned when a document lookup matches nothing
var ErrNotFound = errors.New("document not found")

// Config identifies the collection and vector index backing the store
type Config struct {
	URI         string
	Database    string
	Collection  string
	VectorIndex string
}

// Store wraps one MongoDB collection holding ingested documents. A Store is
// safe for concurrent use; document inserts are independent and never span
// a transaction.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
	index  string
}

// Connect establishes the MongoDB connection and verifies it with a ping.
// Callers own the returned Store's lifecycle and must Close it.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MongoDB URI is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		index:  cfg.VectorIndex,
	}, nil
}

// Close tears down the MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Insert persists a document, assigning its ID and upload date. This is the
// only write path; documents are never updated afterwards.
func (s *Store) Insert(ctx context.Context, doc *models.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.UploadDate.IsZero() {
		doc.UploadDate = time.Now().UTC()
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

// FindByID returns one document or ErrNotFound
func (s *Store) FindByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching document %s: %w", id, err)
	}
	return &doc, nil
}

// FindAll returns every stored document, newest upload first
func (s *Store) FindAll(ctx context.Context) ([]models.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadDate", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetching documents: %w", err)
	}

	docs := []models.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}
	return docs, nil
}

// VectorSearch runs an exact $vectorSearch against the embedding field and
// returns at most k chunks ordered by descending similarity. The embedding is
// projected out so the vector is never re-exposed past the store.
func (s *Store) VectorSearch(ctx context.Context, queryVector []float64, k int) ([]models.RetrievedChunk, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$vectorSearch", Value: bson.D{
			{Key: "exact", Value: true},
			{Key: "index", Value: s.index},
			{Key: "limit", Value: k},
			{Key: "path", Value: "embedding"},
			{Key: "queryVector", Value: queryVector},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "embedding", Value: 0},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}

	chunks := []models.RetrievedChunk{}
	if err := cursor.All(ctx, &chunks); err != nil {
		return nil, fmt.Errorf("decoding search results: %w", err)
	}
	return chunks, nil
}
