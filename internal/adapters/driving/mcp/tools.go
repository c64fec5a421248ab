package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query; natural language queries work best"`
}

// SearchResultItem is a single entry in the search tool output.
type SearchResultItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultItem `json:"results"`
}

// FetchInput is the input schema for the fetch tool.
type FetchInput struct {
	ID string `json:"id" jsonschema:"document ID, as returned by the search tool"`
}

// FetchOutput is the output schema for the fetch tool.
type FetchOutput struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Text     string            `json:"text"`
	URL      string            `json:"url,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search",
		Description: "Search the knowledge base for relevant documents. " +
			"Returns id, title and a text snippet per result; " +
			"use the fetch tool to get complete document content.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "fetch",
		Description: "Retrieve complete document content by ID for detailed " +
			"analysis and citation.",
	}, s.handleFetch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	// Hybrid is a request; the service degrades to keyword-only search
	// when no vector index is configured.
	opts := domain.SearchOptions{Hybrid: true}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, translateError("search", err)
	}

	output := SearchOutput{
		Results: make([]SearchResultItem, len(results)),
	}
	for i := range results {
		output.Results[i] = SearchResultItem{
			ID:    results[i].Document.ID,
			Title: results[i].Document.Title,
			Text:  results[i].Snippet,
			URL:   results[i].Document.URL,
		}
	}

	return nil, output, nil
}

// handleFetch handles the fetch tool invocation.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, FetchOutput, error) {
	doc, err := s.ports.Fetch.Fetch(ctx, input.ID)
	if err != nil {
		return nil, FetchOutput{}, translateError(fmt.Sprintf("fetch %q", input.ID), err)
	}

	output := FetchOutput{
		ID:       doc.ID,
		Title:    doc.Title,
		Text:     doc.Content,
		URL:      doc.URL,
		Metadata: doc.Metadata,
	}

	return nil, output, nil
}
