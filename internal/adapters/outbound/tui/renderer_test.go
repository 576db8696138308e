package tui_test

import (
	"testing"

	"github.com/crewlint/crewlint/internal/adapters/outbound/tui"
	"github.com/crewlint/crewlint/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleSummary() *domain.ValidationSummary {
	ok := domain.NewValidationResult("/crew/workflows/daily-report")
	ok.Name = "daily-report"

	bad := domain.NewValidationResult("/crew/workflows/ghost-task")
	bad.Name = "ghost-task"
	bad.AddError(domain.KindReferenceNotFound, "persona",
		`persona "ghost" does not exist`, "create personas/ghost/PERSONA.md")
	bad.AddWarning(domain.KindUnknownField, "frobnicate", `unknown field "frobnicate"`, "")

	summary := &domain.ValidationSummary{Root: "/crew", CommitHash: "abc1234"}
	summary.Workflows.Add(ok)
	summary.Workflows.Add(bad)
	summary.Recompute()
	return summary
}

func TestRenderSummary(t *testing.T) {
	out := tui.RenderSummary(sampleSummary())

	assert.Contains(t, out, "crewlint")
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "daily-report")
	assert.Contains(t, out, "ghost-task")
	assert.Contains(t, out, `persona "ghost" does not exist`)
	assert.Contains(t, out, "hint: create personas/ghost/PERSONA.md")
	assert.Contains(t, out, "commit abc1234")
}

func TestRenderSummary_ValidTree(t *testing.T) {
	ok := domain.NewValidationResult("/crew/personas/claude")
	ok.Name = "claude"

	summary := &domain.ValidationSummary{Root: "/crew"}
	summary.Personas.Add(ok)
	summary.Recompute()

	out := tui.RenderSummary(summary)
	assert.Contains(t, out, "VALID")
	assert.Contains(t, out, "claude")
	assert.NotContains(t, out, "commit")
}
