package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	configAdapter "github.com/crewlint/crewlint/internal/adapters/outbound/config"
	"github.com/crewlint/crewlint/internal/adapters/outbound/frontmatter"
	"github.com/crewlint/crewlint/internal/adapters/outbound/gitinfo"
	"github.com/crewlint/crewlint/internal/adapters/outbound/scanner"
	"github.com/crewlint/crewlint/internal/adapters/outbound/tui"
	"github.com/crewlint/crewlint/internal/application"
	"github.com/crewlint/crewlint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate every workflow and persona document in a crew tree",
		Long:  "Scan the crew configuration tree, validate each document's frontmatter against its schema, and cross-check workflow persona references.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) == 1 {
				projectPath = args[0]
			}

			cfgLoader := configAdapter.New()
			cfg, err := cfgLoader.Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewValidateService(
				scanner.New(cfg.ExcludePaths...),
				frontmatter.New(),
				cfgLoader,
				gitinfo.New(),
			)

			summary, err := svc.ValidateTree(projectPath)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(summary); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(summary))
			}

			if !summary.Valid {
				return fmt.Errorf("validation failed: %d of %d documents invalid",
					invalidCount(summary), summary.Workflows.Total+summary.Personas.Total)
			}
			if strict && warningCount(summary) > 0 {
				return fmt.Errorf("validation failed (strict): %d warning(s)", warningCount(summary))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings as well as errors")

	return cmd
}

func invalidCount(summary *domain.ValidationSummary) int {
	n := 0
	for _, r := range summary.Workflows.Results {
		if !r.Valid {
			n++
		}
	}
	for _, r := range summary.Personas.Results {
		if !r.Valid {
			n++
		}
	}
	return n
}

func warningCount(summary *domain.ValidationSummary) int {
	n := 0
	results := append([]*domain.ValidationResult{}, summary.Workflows.Results...)
	results = append(results, summary.Personas.Results...)
	for _, r := range results {
		for _, issue := range r.Issues {
			if issue.Severity == domain.SeverityWarning {
				n++
			}
		}
	}
	return n
}
