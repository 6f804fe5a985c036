package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vitalscan/vitalscan/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the vitalscan MCP server",
	Long:  `Launch an MCP server that allows AI agents to analyze pages and query history via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Normal stdout chatter is avoided in MCP mode since stdio
		// carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, psiClient, historyStore)
	},
}
