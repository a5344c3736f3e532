package twodo_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"twodo-mcp/internal/server"
)

// RegisterTwodoTools registers all 2Do tools with the MCP server.
func RegisterTwodoTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerAddTools(s, sc); err != nil {
		return fmt.Errorf("failed to register task creation tools: %w", err)
	}

	if err := registerShowTools(s, sc); err != nil {
		return fmt.Errorf("failed to register navigation tools: %w", err)
	}

	return nil
}
