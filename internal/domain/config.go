package domain

import "fmt"

// Marker filenames identifying the two document kinds. A directory
// containing one of these is a document directory of that kind.
const (
	WorkflowMarker = "WORKFLOW.md"
	PersonaMarker  = "PERSONA.md"
)

// ProjectConfig holds per-project settings loaded from .crewlint.yaml.
type ProjectConfig struct {
	WorkflowsDir string   `yaml:"workflows_dir"`
	PersonasDir  string   `yaml:"personas_dir"`
	ExcludePaths []string `yaml:"exclude_paths"`
}

// DefaultConfig returns the configuration used when no .crewlint.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		WorkflowsDir: "workflows",
		PersonasDir:  "personas",
	}
}

// Validate catches empty overrides in user-supplied raw config.
func (c ProjectConfig) Validate() error {
	if c.WorkflowsDir == "" {
		return fmt.Errorf("workflows_dir must not be empty")
	}
	if c.PersonasDir == "" {
		return fmt.Errorf("personas_dir must not be empty")
	}
	return nil
}
