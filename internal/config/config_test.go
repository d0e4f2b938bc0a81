// ABOUTME: Tests for environment-driven configuration loading
// ABOUTME: Verifies defaults, overrides, and validation bounds
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any ambient overrides
	for _, key := range []string{
		"MONGODB_URI", "DATABASE", "COLLECTION", "VECTOR_INDEX",
		"DOCNEXUS_CHAT_MODEL", "DOCNEXUS_EMBEDDING_MODEL", "OPENAI_TIMEOUT",
		"INGEST_MAX_RETRIES", "INGEST_RETRY_DELAY", "SEARCH_TOP_K",
		"PORT", "MAX_FILE_SIZE", "MAX_BATCH_FILES",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database != "docnexus" {
		t.Errorf("Database = %q, want docnexus", cfg.Database)
	}
	if cfg.Collection != "pdfs" {
		t.Errorf("Collection = %q, want pdfs", cfg.Collection)
	}
	if cfg.VectorIndex != "neural-nexus" {
		t.Errorf("VectorIndex = %q, want neural-nexus", cfg.VectorIndex)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("RetryDelay = %v, want 1s", cfg.RetryDelay)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.MaxFileSize != 10*1024*1024 {
		t.Errorf("MaxFileSize = %d, want 10MB", cfg.MaxFileSize)
	}
	if cfg.MaxBatchFiles != 100 {
		t.Errorf("MaxBatchFiles = %d, want 100", cfg.MaxBatchFiles)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE", "testdb")
	t.Setenv("VECTOR_INDEX", "alt-index")
	t.Setenv("INGEST_MAX_RETRIES", "5")
	t.Setenv("INGEST_RETRY_DELAY", "250ms")
	t.Setenv("SEARCH_TOP_K", "7")
	t.Setenv("MAX_FILE_SIZE", "1048576")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database != "testdb" {
		t.Errorf("Database = %q, want testdb", cfg.Database)
	}
	if cfg.VectorIndex != "alt-index" {
		t.Errorf("VectorIndex = %q, want alt-index", cfg.VectorIndex)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v, want 250ms", cfg.RetryDelay)
	}
	if cfg.TopK != 7 {
		t.Errorf("TopK = %d, want 7", cfg.TopK)
	}
	if cfg.MaxFileSize != 1048576 {
		t.Errorf("MaxFileSize = %d, want 1048576", cfg.MaxFileSize)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("INGEST_MAX_RETRIES", "not-a-number")
	t.Setenv("INGEST_RETRY_DELAY", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3 on unparsable value", cfg.MaxRetries)
	}
	if cfg.RetryDelay != time.Second {
		t.Errorf("RetryDelay = %v, want default 1s on unparsable value", cfg.RetryDelay)
	}
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.MaxRetries = 0 },
			wantErr: true,
		},
		{
			name:    "excessive retries",
			mutate:  func(c *Config) { c.MaxRetries = 11 },
			wantErr: true,
		},
		{
			name:    "non-positive top-k",
			mutate:  func(c *Config) { c.TopK = 0 },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				MaxRetries:    3,
				TopK:          3,
				Port:          3000,
				MaxFileSize:   1024,
				MaxBatchFiles: 100,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
