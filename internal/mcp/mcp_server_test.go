package mcp_test

import (
	"context"
	"testing"

	"github.com/gitpulse/gitpulse/internal/contract"
	mcp_internal "github.com/gitpulse/gitpulse/internal/mcp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	cfg := &contract.Config{
		RawFile: "testdata/does-not-exist.jsonl",
		ProcDir: "testdata/does-not-exist",
	}

	s := mcp_internal.NewMCPServer(cfg)
	ctx := context.Background()

	t.Run("get_traffic missing repo", func(t *testing.T) {
		tool := s.GetTool("get_traffic")
		require.NotNil(t, tool, "Tool get_traffic should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_traffic",
				Arguments: map[string]any{
					"repo": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "repo is required")
	})

	t.Run("list_repos missing processed dir", func(t *testing.T) {
		tool := s.GetTool("list_repos")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "list_repos"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})

	t.Run("get_window_gaps missing raw log", func(t *testing.T) {
		tool := s.GetTool("get_window_gaps")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_window_gaps"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "raw log")
	})
}
