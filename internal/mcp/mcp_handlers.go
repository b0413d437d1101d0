package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gitpulse/gitpulse/core"
	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/procstore"
	"github.com/gitpulse/gitpulse/internal/rawlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	cfg *contract.Config
}

// repoSummary is the list_repos entry for one repository.
type repoSummary struct {
	Repo      string `json:"repo"`
	Days      int    `json:"days"`
	Snapshots int    `json:"snapshots"`
}

func (h *toolHandler) handleListRepos(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := procstore.NewStore(h.cfg.ProcDir).LoadAll()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load processed records: %v", err)), nil
	}

	summaries := make([]repoSummary, len(records))
	for i := range records {
		summaries[i] = repoSummary{
			Repo:      records[i].Repo,
			Days:      records[i].Daily.Len(),
			Snapshots: records[i].Point.Len(),
		}
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTraffic(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repo := request.GetString("repo", "")
	if repo == "" {
		return mcp.NewToolResultError("repo is required"), nil
	}

	record, err := procstore.NewStore(h.cfg.ProcDir).Load(repo)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load traffic for %s: %v", repo, err)), nil
	}

	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWindowGaps(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snaps, err := rawlog.NewStore(h.cfg.RawFile).ReadAll()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("read raw log: %v", err)), nil
	}

	gaps, verifyErr := core.VerifyWindows(snaps)
	report := struct {
		Gaps      []core.WindowGap `json:"gaps"`
		Violation string           `json:"violation,omitempty"`
	}{Gaps: gaps}
	if verifyErr != nil {
		report.Violation = verifyErr.Error()
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
