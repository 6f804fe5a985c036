package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/vitalscan/vitalscan/core"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/iohistory"
	"github.com/vitalscan/vitalscan/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.PageSpeedClient
	history *iohistory.HistoryStore
}

func (h *toolHandler) handleAnalyzePage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	targetURL := core.NormalizeURL(request.GetString("url", ""))
	if targetURL == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	strategy := h.baseCfg.Strategy
	if s := request.GetString("strategy", ""); s != "" {
		strategy = schema.Strategy(s)
		if _, ok := schema.ValidStrategies[strategy]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid strategy: %s", s)), nil
		}
	}

	record, err := core.AnalyzePage(ctx, h.client, targetURL, strategy)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	if err := h.history.Append(record); err != nil {
		contract.LogWarn("persisting analysis record", err)
	}

	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := h.history.Load()
	if l := request.GetInt("limit", 0); l > 0 && l < len(records) {
		records = records[:l]
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExportHistory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	format := schema.ExportFormat(request.GetString("format", string(schema.CSVExport)))
	if _, ok := schema.ValidExportFormats[format]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid format: %s", format)), nil
	}

	if err := iohistory.ExecuteHistoryExport(h.history, format, path); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("exported history to %s", path)), nil
}
