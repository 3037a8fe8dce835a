package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsift/docsift-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [file...]",
	Short: "Start the MCP server over stdio",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC. It owns one
in-memory corpus for the length of the connection; files named on the
command line are pre-loaded, and the load_document tool adds more.

Example client configuration:
  {
    "mcpServers": {
      "docsift": {
        "command": "/path/to/docsift",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	session := newSession(settings)
	if len(args) > 0 {
		if err := ingestPaths(cmd, session, args); err != nil {
			return err
		}
	}

	server, err := mcp.NewServer(&mcp.Ports{Session: session})
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
