// ABOUTME: MCP tool definitions and registration for the document server
// ABOUTME: Defines JSON schemas for the search, list, and get tools
package mcp

import (
	"context"

	"github.com/docnexus/docnexus/internal/core"
	"github.com/docnexus/docnexus/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// DocumentReader is the read-only document surface the tools expose
type DocumentReader interface {
	FindAll(ctx context.Context) ([]models.Document, error)
	FindByID(ctx context.Context, id string) (*models.Document, error)
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, query *core.QueryService, docs DocumentReader) *Handlers {
	handlers := &Handlers{
		query: query,
		docs:  docs,
	}

	// 1. search_documents - grounded question answering over the corpus
	server.AddTool(mcp.Tool{
		Name:        "search_documents",
		Description: "Answer a question using the ingested PDF corpus. Retrieves the most relevant documents by vector similarity and synthesizes a grounded answer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Natural-language question to answer from the corpus",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchDocuments)

	// 2. list_documents - enumerate stored documents
	server.AddTool(mcp.Tool{
		Name:        "list_documents",
		Description: "List all ingested documents with their sentiment and processing metadata.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListDocuments)

	// 3. get_document - fetch a single document by id
	server.AddTool(mcp.Tool{
		Name:        "get_document",
		Description: "Get a single ingested document by its ID, including extracted content.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the document to fetch",
				},
			},
			Required: []string{"document_id"},
		},
	}, handlers.GetDocument)

	return handlers
}
