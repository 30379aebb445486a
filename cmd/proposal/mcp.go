package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lvillar/proposal/mcp"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server on stdio",
	Long: `Expose proposal generation, fee totals and the section catalog to MCP
clients over stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, log, gen, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		s := mcp.NewServer("proposal", version, log.SugaredLogger)
		mcp.RegisterTools(s, gen)
		mcp.RegisterResources(s)
		return s.Run(cmd.Context(), os.Stdin, os.Stdout)
	},
}
