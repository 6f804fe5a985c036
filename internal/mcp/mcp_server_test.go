package mcp_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/iohistory"
	mcp_internal "github.com/vitalscan/vitalscan/internal/mcp"
	"github.com/vitalscan/vitalscan/schema"
)

// stubClient returns one canned response for every request.
type stubClient struct {
	resp *schema.PagespeedResponse
	err  error
}

func (s *stubClient) RunPagespeed(_ context.Context, _ string, _ schema.Strategy) (*schema.PagespeedResponse, error) {
	return s.resp, s.err
}

func newServer(client contract.PageSpeedClient) (*iohistory.HistoryStore, *server.MCPServer) {
	baseCfg := &contract.Config{Strategy: schema.MobileStrategy}
	history := iohistory.NewHistoryStore(iohistory.NewMemoryKeyValueStore())
	return history, mcp_internal.NewMCPServer(baseCfg, client, history)
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	_, s := newServer(&stubClient{resp: &schema.PagespeedResponse{}})

	t.Run("analyze_page missing url", func(t *testing.T) {
		res := callTool(t, s, "analyze_page", map[string]any{"url": ""})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(t, res), "url is required")
	})

	t.Run("analyze_page invalid strategy", func(t *testing.T) {
		res := callTool(t, s, "analyze_page", map[string]any{
			"url":      "https://example.com",
			"strategy": "tablet",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid strategy")
	})

	t.Run("export_history missing path", func(t *testing.T) {
		res := callTool(t, s, "export_history", map[string]any{"path": ""})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "path is required")
	})

	t.Run("export_history invalid format", func(t *testing.T) {
		res := callTool(t, s, "export_history", map[string]any{
			"path":   "out.xml",
			"format": "xml",
		})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "invalid format")
	})
}

func TestMCPAnalyzePageRecordsHistory(t *testing.T) {
	resp := &schema.PagespeedResponse{
		LighthouseResult: &schema.LighthouseResult{
			Categories: &schema.Categories{
				Performance: &schema.CategoryScore{Score: schema.Float(0.91)},
			},
		},
	}
	history, s := newServer(&stubClient{resp: resp})

	res := callTool(t, s, "analyze_page", map[string]any{
		"url":      "example.com",
		"strategy": "desktop",
	})
	require.False(t, res.IsError)

	var record schema.AnalysisRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &record))
	assert.Equal(t, "https://example.com", record.URL)
	assert.Equal(t, schema.DesktopStrategy, record.Strategy)
	require.NotNil(t, record.Metrics.Score)
	assert.Equal(t, 91, *record.Metrics.Score)

	persisted := history.Load()
	require.Len(t, persisted, 1)
	assert.Equal(t, "https://example.com", persisted[0].URL)
}

func TestMCPGetHistoryLimit(t *testing.T) {
	history, s := newServer(&stubClient{resp: &schema.PagespeedResponse{}})
	for _, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		require.NoError(t, history.Append(schema.AnalysisRecord{URL: u, Strategy: schema.MobileStrategy}))
	}

	res := callTool(t, s, "get_history", map[string]any{"limit": 2.0})
	require.False(t, res.IsError)

	var records []schema.AnalysisRecord
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "https://c.example", records[0].URL)
}

func TestMCPExportHistory(t *testing.T) {
	history, s := newServer(&stubClient{resp: &schema.PagespeedResponse{}})
	require.NoError(t, history.Append(schema.AnalysisRecord{URL: "https://a.example", Strategy: schema.MobileStrategy}))

	path := filepath.Join(t.TempDir(), "history.csv")
	res := callTool(t, s, "export_history", map[string]any{
		"path":   path,
		"format": "csv",
	})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), path)
}
