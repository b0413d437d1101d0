// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitpulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(cfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Gitpulse Traffic Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{cfg: cfg}

	// --- 1. Tool: list_repos ---
	s.AddTool(mcp.NewTool("list_repos",
		mcp.WithDescription("List the repositories with processed traffic records."),
	), h.handleListRepos)

	// --- 2. Tool: get_traffic ---
	s.AddTool(mcp.NewTool("get_traffic",
		mcp.WithDescription("Get the full processed traffic record for one repository: daily clone/view series plus star/fork/watcher counters."),
		mcp.WithString("repo", mcp.Description("Full owner/name repository identifier."), mcp.Required()),
	), h.handleGetTraffic)

	// --- 3. Tool: get_window_gaps ---
	s.AddTool(mcp.NewTool("get_window_gaps",
		mcp.WithDescription("Audit the raw snapshot log against the trailing-window invariant and return the gap distribution."),
	), h.handleGetWindowGaps)

	return s
}

// StartMCPServer starts the gitpulse MCP server on stdio.
func StartMCPServer(_ context.Context, cfg *contract.Config) error {
	s := NewMCPServer(cfg)
	return server.ServeStdio(s)
}
