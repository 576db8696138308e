package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crewlint/crewlint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	hintStyle     = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderSummary renders a whole-tree validation summary as a styled TUI
// string.
func RenderSummary(summary *domain.ValidationSummary) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("crewlint")
	subtitle := dimStyle.Render("Crew Configuration Validation")
	verdict := passStyle.Render("VALID")
	if !summary.Valid {
		verdict = failStyle.Render("INVALID")
	}
	counts := dimStyle.Render(fmt.Sprintf("%d/%d workflows  %d/%d personas",
		summary.Workflows.ValidCount, summary.Workflows.Total,
		summary.Personas.ValidCount, summary.Personas.Total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "\n" + counts))
	b.WriteString("\n\n")

	renderCategory(&b, summary.Root, "Personas", summary.Personas)
	renderCategory(&b, summary.Root, "Workflows", summary.Workflows)

	b.WriteString("  " + separatorLine + "\n")
	if summary.CommitHash != "" {
		b.WriteString("  " + hintStyle.Render("commit "+summary.CommitHash) + "\n")
	}

	return b.String()
}

func renderCategory(b *strings.Builder, root, title string, cat domain.CategorySummary) {
	if cat.Total == 0 {
		return
	}

	b.WriteString(fmt.Sprintf("  %s %s\n",
		titleStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", cat.Total)),
	))

	for _, result := range cat.Results {
		renderResult(b, root, result)
	}
	b.WriteString("\n")
}

func renderResult(b *strings.Builder, root string, result *domain.ValidationResult) {
	icon := passStyle.Render("✓")
	if !result.Valid {
		icon = failStyle.Render("✗")
	}

	rel, err := filepath.Rel(root, result.Path)
	if err != nil {
		rel = result.Path
	}
	line := fmt.Sprintf("    %s %s", icon, rel)
	if result.Name != "" {
		line += "  " + dimStyle.Render(result.Name)
	}
	b.WriteString(line + "\n")

	for _, issue := range result.Issues {
		renderIssue(b, issue)
	}
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := warnTagStyle.Render("warn ")
	if issue.Severity == domain.SeverityError {
		tag = errorTagStyle.Render("error")
	}

	b.WriteString(fmt.Sprintf("      %s %s  %s\n",
		tag,
		faintStyle.Render(issue.Path),
		issue.Message,
	))
	if issue.Suggestion != "" {
		b.WriteString("            " + hintStyle.Render("hint: "+issue.Suggestion) + "\n")
	}
}
