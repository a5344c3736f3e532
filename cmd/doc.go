// Package cmd implements the command-line interface for twodo-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing the 2Do tools
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
