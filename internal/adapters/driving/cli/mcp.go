package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pizza-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. It exposes the
plan_dough and resolve_yeast tools and the saved profiles as resources.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "pizza": {
        "command": "/path/to/pizza",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if calculatorService == nil {
		return errCalculatorNotConfigured
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Calculator: calculatorService,
		Profiles:   profileService,
		Settings:   settingsService,
	})
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
