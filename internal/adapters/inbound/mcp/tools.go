package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/crewlint/crewlint/internal/adapters/outbound/config"
	"github.com/crewlint/crewlint/internal/adapters/outbound/frontmatter"
	"github.com/crewlint/crewlint/internal/adapters/outbound/gitinfo"
	"github.com/crewlint/crewlint/internal/adapters/outbound/scanner"
	"github.com/crewlint/crewlint/internal/application"
	"github.com/crewlint/crewlint/internal/domain"
	"github.com/crewlint/crewlint/internal/domain/cron"
)

// registerTools registers all crewlint MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. crewlint_validate_tree
	s.AddTool(
		mcplib.NewTool("crewlint_validate_tree",
			mcplib.WithDescription("Validate every workflow and persona document under the crew tree and return the full summary as JSON"),
		),
		handleValidateTree(projectPath),
	)

	// 2. crewlint_validate_workflow
	s.AddTool(
		mcplib.NewTool("crewlint_validate_workflow",
			mcplib.WithDescription("Validate a single workflow document directory (schema only; persona references need the full tree)"),
			mcplib.WithString("dir",
				mcplib.Required(),
				mcplib.Description("Workflow directory path relative to the crew tree root"),
			),
		),
		handleValidateWorkflow(projectPath),
	)

	// 3. crewlint_validate_persona
	s.AddTool(
		mcplib.NewTool("crewlint_validate_persona",
			mcplib.WithDescription("Validate a single persona document directory, inferring root-vs-inherited from its position in the persona tree"),
			mcplib.WithString("dir",
				mcplib.Required(),
				mcplib.Description("Persona directory path relative to the crew tree root"),
			),
		),
		handleValidatePersona(projectPath),
	)

	// 4. crewlint_check_cron
	s.AddTool(
		mcplib.NewTool("crewlint_check_cron",
			mcplib.WithDescription("Validate a cron expression, or translate a schedule phrase like 'daily at 9am' into one"),
			mcplib.WithString("expression", mcplib.Description("5-field cron expression to validate")),
			mcplib.WithString("hint", mcplib.Description("Schedule phrase to translate instead")),
		),
		handleCheckCron(),
	)
}

// newService creates the validate service wired with the standard
// filesystem adapters.
func newService(projectPath string) *application.ValidateService {
	cfgLoader := configAdapter.New()
	cfg, err := cfgLoader.Load(projectPath)
	if err != nil {
		cfg = domain.DefaultConfig()
	}
	return application.NewValidateService(
		scanner.New(cfg.ExcludePaths...),
		frontmatter.New(),
		cfgLoader,
		gitinfo.New(),
	)
}

func handleValidateTree(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := newService(projectPath)
		summary, err := svc.ValidateTree(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

func handleValidateWorkflow(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, err := request.RequireString("dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := newService(projectPath)
		result := svc.ValidateWorkflow(filepath.Join(projectPath, dir))
		return jsonResult(result)
	}
}

func handleValidatePersona(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dir, err := request.RequireString("dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfgLoader := configAdapter.New()
		cfg, err := cfgLoader.Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		svc := newService(projectPath)
		personasRoot := filepath.Join(projectPath, cfg.PersonasDir)
		result := svc.ValidatePersona(personasRoot, filepath.Join(projectPath, dir))
		return jsonResult(result)
	}
}

func handleCheckCron() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		if hint, ok := args["hint"].(string); ok && hint != "" {
			expr, matched := cron.FromHint(hint)
			if !matched {
				return textResult(fmt.Sprintf("no cron translation for %q", hint)), nil
			}
			return textResult(expr), nil
		}

		expr, ok := args["expression"].(string)
		if !ok || expr == "" {
			return errorResult("provide either expression or hint"), nil
		}
		if err := cron.Validate(expr); err != nil {
			return textResult(fmt.Sprintf("invalid: %v", err)), nil
		}
		return textResult("valid"), nil
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
