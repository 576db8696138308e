package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all crewlint MCP resources on the given
// server.
func registerResources(s *server.MCPServer, projectPath string) {
	// crewlint://summary - current whole-tree validation summary
	s.AddResource(
		mcplib.NewResource(
			"crewlint://summary",
			"Validation Summary",
			mcplib.WithResourceDescription("Validation summary for every workflow and persona document in the crew tree"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSummaryResource(projectPath),
	)
}

func handleSummaryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := newService(projectPath)
		summary, err := svc.ValidateTree(projectPath)
		if err != nil {
			return nil, fmt.Errorf("validating tree: %w", err)
		}

		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling summary: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "crewlint://summary",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
