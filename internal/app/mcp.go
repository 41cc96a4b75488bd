package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the hub's tools",
	Long: `Start a Model Context Protocol stdio server. The server exposes:

  score_wellness      Score a wellness check-in and suggest tips
  tag_sentiment       Keyword sentiment and crisis phrase detection
  search_resources    Search the mental health provider directory
  get_dashboard       Synthetic national insight panels
  get_crisis_support  Emergency hotline numbers

Example MCP client configuration:
  {"mcpServers":{"mindhub":{"command":"mindhub","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, closeDir := openDirectory(cmd.Context(), cfg)
	defer closeDir()

	srv := mcp.NewServer(mcp.Options{Version: appVersion, Directory: dir})
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
