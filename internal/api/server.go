// ABOUTME: HTTP transport exposing upload, listing, lookup, and search endpoints
// ABOUTME: Owns multipart handling and the application/pdf boundary filter
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/docnexus/docnexus/internal/core"
	"github.com/docnexus/docnexus/internal/models"
	"github.com/docnexus/docnexus/internal/storage"
)

// uploadField is the multipart form field carrying the PDF files
const uploadField = "pdfs"

// DocumentReader is the read-side store surface the API serves directly
type DocumentReader interface {
	FindAll(ctx context.Context) ([]models.Document, error)
	FindByID(ctx context.Context, id string) (*models.Document, error)
}

// Server wires the ingestion and query pipelines to HTTP routes
type Server struct {
	batch         *core.BatchCoordinator
	query         *core.QueryService
	docs          DocumentReader
	maxFileSize   int64
	maxBatchFiles int
}

// NewServer creates the HTTP transport over the two pipelines and the store
func NewServer(batch *core.BatchCoordinator, query *core.QueryService, docs DocumentReader, maxFileSize int64, maxBatchFiles int) *Server {
	return &Server{
		batch:         batch,
		query:         query,
		docs:          docs,
		maxFileSize:   maxFileSize,
		maxBatchFiles: maxBatchFiles,
	}
}

// Handler returns the route table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/upload", s.handleUpload)
	mux.HandleFunc("GET /api/pdfs", s.handleListPDFs)
	mux.HandleFunc("GET /api/pdf/{id}", s.handleGetPDF)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"time_utc": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleUpload accepts a multipart batch, filters at the transport boundary
// (mime type, file size, batch size), and runs the batch coordinator. The
// batch itself cannot fail: per-file outcomes come back itemized under 200.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "no files uploaded")
		return
	}
	if len(headers) > s.maxBatchFiles {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many files: limit is %d per upload", s.maxBatchFiles))
		return
	}

	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		if mime := header.Header.Get("Content-Type"); mime != "application/pdf" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("only PDF files are allowed, got %q for %s", mime, header.Filename))
			return
		}
		if header.Size > s.maxFileSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s exceeds the %d byte file limit", header.Filename, s.maxFileSize))
			return
		}

		f, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read %s", header.Filename))
			return
		}
		buf, err := io.ReadAll(io.LimitReader(f, s.maxFileSize+1))
		_ = f.Close()
		if err != nil || int64(len(buf)) > s.maxFileSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("could not read %s", header.Filename))
			return
		}

		files = append(files, models.UploadFile{
			OriginalName: header.Filename,
			MimeType:     header.Header.Get("Content-Type"),
			Buffer:       buf,
		})
	}

	log.Printf("[api] %d PDF(s) uploaded", len(files))
	result := s.batch.IngestBatch(r.Context(), files)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListPDFs(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docs.FindAll(r.Context())
	if err != nil {
		log.Printf("[api] listing documents: %v", err)
		writeError(w, http.StatusInternalServerError, "error fetching PDFs")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetPDF(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doc, err := s.docs.FindByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "PDF not found")
		return
	}
	if err != nil {
		log.Printf("[api] fetching document %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "error fetching PDF")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleSearch answers a natural-language query. Any stage failure is a
// single error response; there is no partial answer.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	result, err := s.query.Query(r.Context(), q)
	if err != nil {
		log.Printf("[api] query failed: %v", err)
		writeError(w, http.StatusInternalServerError, "error answering query")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
