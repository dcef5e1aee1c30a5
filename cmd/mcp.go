package cmd

import (
	"fplassist/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the fplassist MCP server",
	Long:  `Launch an MCP server that allows AI agents to request squad advice via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup runs here rather than in Run so protocol stdio stays clean
		// of any setup error output.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, source)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
