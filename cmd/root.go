package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the twodo-mcp application
var rootCmd = &cobra.Command{
	Use:   "twodo-mcp",
	Short: "MCP server for the 2Do task manager on macOS",
	Long: `twodo-mcp exposes the 2Do task manager to AI assistants via the
Model Context Protocol. Tasks are created and looked up through 2Do's
twodo:// URL scheme; the system clipboard is the only channel through
which 2Do reports anything back.

It can run as:
  - An MCP server over stdio (default)
  - An MCP server over streamable HTTP`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "twodo-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
