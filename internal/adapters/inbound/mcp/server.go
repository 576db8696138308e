package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCrewlintMCPServer creates a new MCP server with all crewlint tools
// and resources registered. The projectPath is the root directory of the
// crew tree to validate.
func NewCrewlintMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"crewlint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
