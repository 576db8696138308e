package application

import (
	"fmt"
	"path/filepath"

	"github.com/crewlint/crewlint/internal/domain"
)

// ValidateService runs schema validation across a crew tree: every persona
// document, then every workflow document, then cross-document reference
// checks. It never mutates the tree and is safe to re-run at any time.
type ValidateService struct {
	scanner domain.TreeScanner
	parser  domain.DocumentParser
	config  domain.ConfigLoader
	git     domain.GitInfo
}

// NewValidateService creates a ValidateService. git may be nil, in which
// case summaries carry no commit hash.
func NewValidateService(
	scanner domain.TreeScanner,
	parser domain.DocumentParser,
	config domain.ConfigLoader,
	git domain.GitInfo,
) *ValidateService {
	return &ValidateService{scanner: scanner, parser: parser, config: config, git: git}
}

// ValidateTree validates every document under projectPath and returns the
// whole-tree summary.
//
// Personas are validated before workflows: a workflow's persona reference
// resolves against the persona tree, and rootedness for each persona
// depends on ancestor marker checks completed top-down. A persona that
// exists but fails its own schema still satisfies references to it; only
// marker absence is a reference_not_found.
func (s *ValidateService) ValidateTree(projectPath string) (*domain.ValidationSummary, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	absRoot, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	summary := &domain.ValidationSummary{Root: absRoot}
	personasRoot := filepath.Join(absRoot, cfg.PersonasDir)
	workflowsRoot := filepath.Join(absRoot, cfg.WorkflowsDir)

	// 1. Personas, with rootedness inferred from directory shape.
	personaDirs, err := s.scanner.FindDocumentDirs(personasRoot, domain.PersonaMarker)
	if err != nil {
		return nil, fmt.Errorf("scanning personas: %w", err)
	}
	rootedness := newRootednessResolver(s.scanner, personasRoot, domain.PersonaMarker)
	for _, dir := range personaDirs {
		summary.Personas.Add(s.validatePersonaDir(dir, rootedness.IsRoot(dir)))
	}

	// 2. Workflows, then persona reference resolution per document.
	workflowDirs, err := s.scanner.FindDocumentDirs(workflowsRoot, domain.WorkflowMarker)
	if err != nil {
		return nil, fmt.Errorf("scanning workflows: %w", err)
	}
	for _, dir := range workflowDirs {
		result, doc := s.validateWorkflowDir(dir)
		if doc != nil {
			s.resolvePersonaRef(result, doc, personasRoot)
		}
		summary.Workflows.Add(result)
	}

	if s.git != nil && s.git.IsGitRepo(absRoot) {
		if hash, err := s.git.CommitHash(absRoot); err == nil {
			summary.CommitHash = hash
		}
	}

	summary.Recompute()
	return summary, nil
}

// ValidateWorkflow validates a single workflow document directory against
// the workflow schema. Persona references are not resolved; that needs
// the whole tree.
func (s *ValidateService) ValidateWorkflow(dir string) *domain.ValidationResult {
	result, _ := s.validateWorkflowDir(dir)
	return result
}

// ValidatePersona validates a single persona document directory, inferring
// rootedness from its position under personasRoot.
func (s *ValidateService) ValidatePersona(personasRoot, dir string) *domain.ValidationResult {
	rootedness := newRootednessResolver(s.scanner, personasRoot, domain.PersonaMarker)
	return s.validatePersonaDir(dir, rootedness.IsRoot(dir))
}

func (s *ValidateService) validateWorkflowDir(dir string) (*domain.ValidationResult, *domain.Document) {
	doc, err := s.parser.Parse(filepath.Join(dir, domain.WorkflowMarker))
	if err != nil {
		return parseFailure(dir, err), nil
	}
	return domain.ValidateWorkflow(dir, doc), doc
}

func (s *ValidateService) validatePersonaDir(dir string, isRoot bool) *domain.ValidationResult {
	doc, err := s.parser.Parse(filepath.Join(dir, domain.PersonaMarker))
	if err != nil {
		return parseFailure(dir, err)
	}
	return domain.ValidatePersona(dir, doc, isRoot)
}

// resolvePersonaRef checks that the workflow's declared persona resolves
// to an existing persona document, demoting the result when it does not.
func (s *ValidateService) resolvePersonaRef(result *domain.ValidationResult, doc *domain.Document, personasRoot string) {
	ref, ok := doc.Fields["persona"].(string)
	if !ok || ref == "" {
		return
	}
	personaDir := filepath.Join(personasRoot, filepath.FromSlash(ref))
	if s.scanner.HasMarker(personaDir, domain.PersonaMarker) {
		return
	}
	result.AddError(domain.KindReferenceNotFound, "persona",
		fmt.Sprintf("persona %q does not exist", ref),
		fmt.Sprintf("create %s", filepath.Join(personaDir, domain.PersonaMarker)))
}

// parseFailure collapses an unreadable or unparseable document to a single
// error-level issue. No field checks are attempted on such a document.
func parseFailure(dir string, err error) *domain.ValidationResult {
	r := domain.NewValidationResult(dir)
	r.AddError(domain.KindInvalidValue, "frontmatter", err.Error(), "")
	return r
}
