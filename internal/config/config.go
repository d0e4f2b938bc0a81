// ABOUTME: Centralized configuration for the docnexus server and CLI
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the system
type Config struct {
	// MongoDB settings
	MongoURI    string
	Database    string
	Collection  string
	VectorIndex string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration

	// Ingestion settings
	MaxRetries int
	RetryDelay time.Duration

	// Query settings
	TopK int

	// HTTP settings
	Port          int
	MaxFileSize   int64
	MaxBatchFiles int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:       getEnv("DATABASE", "docnexus"),
		Collection:     getEnv("COLLECTION", "pdfs"),
		VectorIndex:    getEnv("VECTOR_INDEX", "neural-nexus"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("DOCNEXUS_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("DOCNEXUS_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("INGEST_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("INGEST_RETRY_DELAY", time.Second),
		TopK:           getEnvInt("SEARCH_TOP_K", 3),
		Port:           getEnvInt("PORT", 3000),
		MaxFileSize:    getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),
		MaxBatchFiles:  getEnvInt("MAX_BATCH_FILES", 100),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxRetries < 1 || c.MaxRetries > 10 {
		return fmt.Errorf("INGEST_MAX_RETRIES must be 1-10, got %d", c.MaxRetries)
	}
	if c.TopK < 1 {
		return fmt.Errorf("SEARCH_TOP_K must be positive, got %d", c.TopK)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be 1-65535, got %d", c.Port)
	}
	if c.MaxFileSize < 1 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.MaxFileSize)
	}
	if c.MaxBatchFiles < 1 {
		return fmt.Errorf("MAX_BATCH_FILES must be positive, got %d", c.MaxBatchFiles)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
