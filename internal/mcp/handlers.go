// ABOUTME: MCP tool handler implementations for the document server
// ABOUTME: Wraps the query service and document store with tool-call plumbing
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/docnexus/docnexus/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	query *core.QueryService
	docs  DocumentReader
}

// SearchDocuments handles the search_documents tool
func (h *Handlers) SearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queryText, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	result, err := h.query.Query(ctx, queryText)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("query failed: %v", err)), nil
	}

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListDocuments handles the list_documents tool
func (h *Handlers) ListDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := h.docs.FindAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list documents: %v", err)), nil
	}

	summaries := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, map[string]interface{}{
			"id":                  doc.ID,
			"filename":            doc.Filename,
			"original_name":       doc.OriginalName,
			"sentiment":           string(doc.Sentiment),
			"page_count":          doc.Metadata.PageCount,
			"processing_attempts": doc.Metadata.ProcessingAttempts,
			"upload_date":         doc.UploadDate.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"documents": summaries,
		"count":     len(summaries),
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetDocument handles the get_document tool
func (h *Handlers) GetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError("document_id argument is required and must be a string"), nil
	}

	doc, err := h.docs.FindByID(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get document: %v", err)), nil
	}

	responseJSON, err := json.Marshal(doc)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
