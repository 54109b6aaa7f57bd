package docs

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PageArgument defines page retrieval parameters.
type PageArgument struct {
	PagePath string `json:"page_path" jsonschema_description:"Path to the documentation page (e.g. \"cheaha/slurm/slurm_tutorial\" or a GitHub file URL)"`
}

// PageHandler handles the get_documentation_page MCP tool.
type PageHandler struct {
	service *Service
}

// NewPageHandler creates a new page handler.
func NewPageHandler(service *Service) *PageHandler {
	return &PageHandler{
		service: service,
	}
}

// Handle normalizes the page reference, resolves its content across branch
// candidates and returns the page with its public URL.
func (h *PageHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args PageArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.PagePath) == "" {
		return errorResult("Page path cannot be empty"), nil, nil
	}

	settings := h.service.Settings()

	canonicalPath, err := NormalizePath(settings, args.PagePath)
	if err != nil {
		return errorResult(fmt.Sprintf("Error: invalid page reference %q: %s", args.PagePath, err)), nil, nil
	}

	content, err := h.service.ResolveContent(ctx, canonicalPath)
	if err != nil {
		return errorResult(h.resolveErrorText(canonicalPath, err)), nil, nil
	}

	return textResult(formatPage(settings.SiteBaseURL, canonicalPath, PageURL(settings, canonicalPath), content)), nil, nil
}

// resolveErrorText maps a resolution failure onto a descriptive message.
func (h *PageHandler) resolveErrorText(canonicalPath string, err error) string {
	if IsNotFound(err) {
		return fmt.Sprintf(
			"Error: unable to fetch content from the documentation repository. The file may not exist at path: %s", canonicalPath)
	}
	return fmt.Sprintf("Error retrieving documentation page %s: %s", canonicalPath, err)
}

// formatPage renders the page content with its public URL and source metadata.
func formatPage(siteBaseURL, canonicalPath, pageURL, content string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Documentation Page: %s\n", canonicalPath))
	sb.WriteString(fmt.Sprintf("**URL:** %s\n\n", pageURL))
	sb.WriteString("---\n\n")
	sb.WriteString(content)
	sb.WriteString("\n\n---\n\n")
	sb.WriteString("**Source:** UAB Research Computing Documentation\n")
	sb.WriteString(fmt.Sprintf("**Base URL:** %s\n", siteBaseURL))
	return sb.String()
}

// GetToolDefinition returns the MCP tool definition.
func (h *PageHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_documentation_page",
		Description: "Retrieve the full markdown content of a specific documentation page",
	}
}

// RegisterPageTool registers the page tool with an MCP server.
func RegisterPageTool(server *mcp.Server, service *Service) {
	handler := NewPageHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
