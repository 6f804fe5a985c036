// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/iohistory"
)

// NewMCPServer initializes and configures the vitalscan MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.PageSpeedClient, history *iohistory.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Vitalscan Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
		history: history,
	}

	// --- 1. Tool: analyze_page ---
	s.AddTool(mcp.NewTool("analyze_page",
		mcp.WithDescription("Analyze a web page's Core Web Vitals via the PageSpeed Insights provider."),
		mcp.WithString("url", mcp.Description("The page URL to analyze."), mcp.Required()),
		mcp.WithString("strategy", mcp.Description("Device strategy (mobile or desktop). Defaults to the configured strategy."), mcp.Enum("mobile", "desktop")),
	), h.handleAnalyzePage)

	// --- 2. Tool: get_history ---
	s.AddTool(mcp.NewTool("get_history",
		mcp.WithDescription("Return past analyses, most recent first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of records returned.")),
	), h.handleGetHistory)

	// --- 3. Tool: export_history ---
	s.AddTool(mcp.NewTool("export_history",
		mcp.WithDescription("Export the analysis history to a CSV or Parquet file."),
		mcp.WithString("path", mcp.Description("Output file path."), mcp.Required()),
		mcp.WithString("format", mcp.Description("Export format (csv or parquet). Defaults to csv."), mcp.Enum("csv", "parquet")),
	), h.handleExportHistory)

	return s
}

// StartMCPServer starts the vitalscan MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.PageSpeedClient, history *iohistory.HistoryStore) error {
	s := NewMCPServer(baseCfg, client, history)
	return server.ServeStdio(s)
}
