package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/crewlint/crewlint/internal/adapters/outbound/config"
	"github.com/crewlint/crewlint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".crewlint.yaml"), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
workflows_dir: tasks
exclude_paths:
  - archive
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "tasks", cfg.WorkflowsDir)
	assert.Equal(t, "personas", cfg.PersonasDir, "unset fields keep defaults")
	assert.Equal(t, []string{"archive"}, cfg.ExcludePaths)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .crewlint.yaml")
}

func TestYAMLLoader_EmptyDirRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `workflows_dir: ""`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .crewlint.yaml")
}