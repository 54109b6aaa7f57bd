package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/uabrc/rcdocs-mcp/internal/docs"
)

// ServerConfig contains configuration for creating an MCP server
type ServerConfig struct {
	Name    string
	Version string
	DocsSvc *docs.Service
}

// CreateServer creates and configures the MCP server
func CreateServer(cfg ServerConfig) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	if cfg.DocsSvc != nil {
		docs.RegisterSearchTool(s, cfg.DocsSvc)
		docs.RegisterPageTool(s, cfg.DocsSvc)
		docs.RegisterInfoTools(s, cfg.DocsSvc)
	}

	return s
}
