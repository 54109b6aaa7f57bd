package docs

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps plain text in a successful tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult wraps a descriptive message in an error tool result. Failures
// are reported through the result rather than a protocol error so the
// calling agent can relay the condition directly.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
