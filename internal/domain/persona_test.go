package domain_test

import (
	"testing"

	"github.com/crewlint/crewlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personaDoc(fields map[string]any) *domain.Document {
	return &domain.Document{Path: "personas/claude/PERSONA.md", Fields: fields, Body: "A persona.\n"}
}

func TestValidatePersona_RootRequiresCmd(t *testing.T) {
	fields := map[string]any{"name": "claude"}

	root := domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, root.Valid)
	require.Len(t, root.Issues, 1)
	assert.Equal(t, domain.KindMissingField, root.Issues[0].Kind)
	assert.Equal(t, "cmd", root.Issues[0].Path)

	inherited := domain.ValidatePersona("personas/claude/autonomous", personaDoc(fields), false)
	assert.True(t, inherited.Valid, "non-root personas inherit cmd")
	assert.Empty(t, inherited.Issues)
}

func TestValidatePersona_MissingName(t *testing.T) {
	r := domain.ValidatePersona("personas/x", personaDoc(map[string]any{"cmd": "claude"}), true)
	require.False(t, r.Valid)
	assert.Equal(t, "name", r.Issues[0].Path)
}

func TestValidatePersona_CmdForms(t *testing.T) {
	for _, v := range []any{"claude", []any{"claude", "--dangerously-skip-permissions"}} {
		fields := map[string]any{"name": "claude", "cmd": v}
		r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)
		assert.True(t, r.Valid, "cmd %v should be accepted", v)
	}

	fields := map[string]any{"name": "claude", "cmd": 42}
	r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, r.Valid)
	assert.Equal(t, "cmd", r.Issues[0].Path)

	fields = map[string]any{"name": "claude", "cmd": []any{"claude", 42}}
	r = domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, r.Valid)
	assert.Equal(t, "cmd[1]", r.Issues[0].Path)
}

func TestValidatePersona_EnvValueLooseness(t *testing.T) {
	fields := map[string]any{
		"name": "claude",
		"cmd":  "claude",
		"env": map[string]any{
			"MODEL":   "claude-sonnet-4-5",
			"RETRIES": 3,
		},
	}
	r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)

	assert.True(t, r.Valid, "non-string env values warn, never invalidate")
	require.Len(t, r.Issues, 1)
	issue := r.Issues[0]
	assert.Equal(t, domain.SeverityWarning, issue.Severity)
	assert.Equal(t, "env.RETRIES", issue.Path)
	assert.Contains(t, issue.Suggestion, "quote")
}

func TestValidatePersona_EnvMustBeObject(t *testing.T) {
	fields := map[string]any{"name": "claude", "cmd": "claude", "env": []any{"A=1"}}
	r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, r.Valid)
	assert.Equal(t, "env", r.Issues[0].Path)
}

func TestValidatePersona_Skills(t *testing.T) {
	fields := map[string]any{
		"name":   "claude",
		"cmd":    "claude",
		"skills": []any{"documents/*", 7},
	}
	r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, r.Valid)
	assert.Equal(t, "skills[1]", r.Issues[0].Path)

	fields["skills"] = "documents/*"
	r = domain.ValidatePersona("personas/claude", personaDoc(fields), true)
	require.False(t, r.Valid)
	assert.Equal(t, "skills", r.Issues[0].Path)
}

func TestValidatePersona_LegacyFieldWarnings(t *testing.T) {
	tests := []struct {
		key        string
		suggestion string
	}{
		{"command", `"cmd"`},
		{"skill", `"skills"`},
		{"environment", `"env"`},
		{"variables", `"env"`},
		{"model", "env"},
	}

	for _, tt := range tests {
		fields := map[string]any{"name": "claude", "cmd": "claude", tt.key: "x"}
		r := domain.ValidatePersona("personas/claude", personaDoc(fields), true)

		assert.True(t, r.Valid, "legacy field %q is a warning", tt.key)
		require.Len(t, r.Issues, 1)
		assert.Equal(t, domain.KindDeprecatedField, r.Issues[0].Kind)
		assert.Contains(t, r.Issues[0].Suggestion, tt.suggestion)
	}
}
