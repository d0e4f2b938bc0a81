// ABOUTME: Serve command starts the HTTP API server
// ABOUTME: Exposes upload, listing, lookup, and search endpoints
package commands

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

	"github.com/spf13/cobra"

	"github.com/docnexus/docnexus/internal/api"
	"github.com/joho/godotenv"
)

var servePort int

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Serves PDF upload, document listing, and grounded search endpoints:

  POST /api/upload    multipart upload (field "pdfs")
  GET  /api/pdfs      list ingested documents
  GET  /api/pdf/{id}  fetch one document
  GET  /api/search    answer a question (?q=...)
  GET  /health        liveness probe

Examples:
  docnexus serve
  docnexus serve --port 8080`,
		RunE: runServe,
	}

	cmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env or 3000)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("[serve] no .env file found: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	port := application.cfg.Port
	if servePort > 0 {
		port = servePort
	}

	server := api.NewServer(application.batch, application.query, application.store,
		application.cfg.MaxFileSize, application.cfg.MaxBatchFiles)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.Handler(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.ListenAndServe()
	}()

	if !quiet {
		log.Printf("[serve] listening on :%d", port)
	}

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("[serve] shutdown signal received")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
