// ABOUTME: Document is the persisted unit of storage for ingested PDFs
// ABOUTME: Carries extracted text, sentiment, embedding vector, and processing metadata
package models

import (
	"strings"
	"time"
)

// Sentiment is the coarse sentiment label attached to a document at ingestion
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// IsValid reports whether s is one of the three allowed labels
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// ParseSentiment normalizes a raw classifier response (trimmed, case-insensitive)
// and reports whether it maps to a valid label
func ParseSentiment(raw string) (Sentiment, bool) {
	s := Sentiment(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// DocumentMetadata records how a document was processed
type DocumentMetadata struct {
	PageCount          int `bson:"pageCount" json:"pageCount"`
	ProcessingAttempts int `bson:"processingAttempts" json:"processingAttempts"`
}

// Document is immutable after creation: it is persisted exactly once, with
// embedding and sentiment already attached, and never updated.
// The embedding is query-only and never serialized to JSON responses.
type Document struct {
	ID           string           `bson:"_id,omitempty" json:"id,omitempty"`
	Filename     string           `bson:"filename" json:"filename"`
	OriginalName string           `bson:"originalName" json:"originalName"`
	Content      string           `bson:"content" json:"content"`
	Sentiment    Sentiment        `bson:"sentiment" json:"sentiment"`
	Embedding    []float64        `bson:"embedding" json:"-"`
	Metadata     DocumentMetadata `bson:"metadata" json:"metadata"`
	UploadDate   time.Time        `bson:"uploadDate" json:"uploadDate"`
}

// RetrievedChunk is a transient projection of a Document returned by vector
// search: every field except the embedding. Its position in the returned
// slice is its relevance rank.
type RetrievedChunk struct {
	ID           string           `bson:"_id,omitempty" json:"id,omitempty"`
	Filename     string           `bson:"filename" json:"filename"`
	OriginalName string           `bson:"originalName" json:"originalName"`
	Content      string           `bson:"content" json:"content"`
	Sentiment    Sentiment        `bson:"sentiment" json:"sentiment"`
	Metadata     DocumentMetadata `bson:"metadata" json:"metadata"`
	UploadDate   time.Time        `bson:"uploadDate" json:"uploadDate"`
}
