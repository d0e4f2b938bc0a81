// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to search the document corpus via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docnexus/docnexus/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs DocNexus as an MCP (Model Context Protocol) server, exposing
search_documents, list_documents, and get_document tools via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  docnexus mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "docnexus": {
  #       "command": "docnexus",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	server := mcpserver.NewMCPServer(
		"DocNexus Document Search",
		"0.1.0",
	)

	mcp.RegisterTools(server, application.query, application.store)

	if !quiet {
		log.Println("[mcp] server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("[mcp] shutdown signal received")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
