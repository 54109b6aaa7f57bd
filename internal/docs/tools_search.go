package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchArgument defines search parameters.
type SearchArgument struct {
	Query      string `json:"query" jsonschema_description:"Search term or phrase to look for in the documentation"`
	MaxResults int    `json:"max_results,omitempty" jsonschema_description:"Maximum number of results to return (default: 5, max: 10)"`
}

// SearchHandler handles the search_documentation MCP tool.
type SearchHandler struct {
	service *Service
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// Handle executes the documentation search and returns formatted results.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgument) (*mcp.CallToolResult, any, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return errorResult("Query cannot be empty"), nil, nil
	}

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = h.service.Settings().MaxResults
	}

	entries, total, err := h.service.Search(ctx, query, maxResults)
	if err != nil {
		return errorResult(h.searchErrorText(err)), nil, nil
	}

	if len(entries) == 0 {
		return textResult(fmt.Sprintf(
			"No results found for %q in the UAB Research Computing documentation.", query)), nil, nil
	}

	return textResult(formatSearchResults(query, total, entries)), nil, nil
}

// searchErrorText maps a search failure onto actionable caller guidance.
// Credential rejection and quota exhaustion get distinct messages.
func (h *SearchHandler) searchErrorText(err error) string {
	tokenVar := h.service.Settings().TokenEnvVar
	switch {
	case IsAuthFailure(err):
		return fmt.Sprintf(
			"Error: GitHub API authentication failed. Set the %s environment variable to a valid token for authenticated access.", tokenVar)
	case IsRateLimited(err):
		return fmt.Sprintf(
			"Error: GitHub API rate limit exceeded. Set the %s environment variable for higher rate limits.", tokenVar)
	default:
		return fmt.Sprintf("Error searching documentation: %s", err)
	}
}

// formatSearchResults renders entries as a numbered markdown list.
func formatSearchResults(query string, total int, entries []Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d results for %q:\n", total, query))

	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("\n%d. **%s**\n", i+1, entry.Title))
		sb.WriteString(fmt.Sprintf("   URL: %s\n", entry.PublicURL))
		sb.WriteString(fmt.Sprintf("   Repository: %s\n", entry.RepositoryURL))
		sb.WriteString(fmt.Sprintf("   Path: %s\n", entry.SourcePath))
	}

	sb.WriteString("\nTip: Use the 'get_documentation_page' tool to retrieve the full content of a specific page.")
	return sb.String()
}

// GetToolDefinition returns the MCP tool definition.
func (h *SearchHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_documentation",
		Description: "Search the UAB Research Computing documentation for pages matching a query",
	}
}

// RegisterSearchTool registers the search tool with an MCP server.
func RegisterSearchTool(server *mcp.Server, service *Service) {
	handler := NewSearchHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
