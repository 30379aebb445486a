// Command proposal generates client proposal documents.
//
// It runs as an HTTP service, a one-shot generator over a form file, or an
// MCP server on stdio:
//
//	proposal serve --config proposal.yaml
//	proposal generate form.json -o out/
//	proposal totals form.json
//	proposal mcp
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	assetsDir  string
	logMode    string
)

var rootCmd = &cobra.Command{
	Use:   "proposal",
	Short: "Generate client proposal documents",
	Long: `Generate client proposals from a submitted form: the selected services
are priced, laid out with page headers and footers, and stitched together
with the static brochure pages.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "proposal.yaml", "Configuration file")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "", "Assets directory (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "", "Log mode: development or production")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
