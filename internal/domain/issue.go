package domain

// Issue represents a single validation finding in a document.
type Issue struct {
	Severity   string `json:"severity"`
	Kind       string `json:"kind"`
	Path       string `json:"path"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue kinds. The first four are always errors and invalidate the
// document; the last two are always warnings and never do.
const (
	KindMissingField      = "missing_field"
	KindInvalidType       = "invalid_type"
	KindInvalidValue      = "invalid_value"
	KindReferenceNotFound = "reference_not_found"
	KindUnknownField      = "unknown_field"
	KindDeprecatedField   = "deprecated_field"
)

// ValidationResult holds the outcome of validating a single document.
type ValidationResult struct {
	Path   string  `json:"path"`
	Name   string  `json:"name,omitempty"`
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// NewValidationResult creates an empty result for the document in dir.
// A result with no issues is valid.
func NewValidationResult(dir string) *ValidationResult {
	return &ValidationResult{Path: dir, Valid: true}
}

// AddIssue appends an issue and recomputes Valid. Valid is always derived
// from the issue list, never set independently, so issues appended after
// field validation (e.g. reference checks) demote the result correctly.
func (r *ValidationResult) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
	r.Valid = true
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			r.Valid = false
			break
		}
	}
}

// AddError appends an error-severity issue.
func (r *ValidationResult) AddError(kind, path, message, suggestion string) {
	r.AddIssue(Issue{
		Severity:   SeverityError,
		Kind:       kind,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

// AddWarning appends a warning-severity issue.
func (r *ValidationResult) AddWarning(kind, path, message, suggestion string) {
	r.AddIssue(Issue{
		Severity:   SeverityWarning,
		Kind:       kind,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

// CategorySummary aggregates results for one document kind.
type CategorySummary struct {
	Total      int                 `json:"total"`
	ValidCount int                 `json:"valid_count"`
	Results    []*ValidationResult `json:"results"`
}

// Add folds one result into the category totals.
func (c *CategorySummary) Add(r *ValidationResult) {
	c.Results = append(c.Results, r)
	c.Total++
	if r.Valid {
		c.ValidCount++
	}
}

// ValidationSummary is the whole-tree outcome of a validation run.
type ValidationSummary struct {
	Root       string          `json:"root"`
	CommitHash string          `json:"commit_hash,omitempty"`
	Workflows  CategorySummary `json:"workflows"`
	Personas   CategorySummary `json:"personas"`
	Valid      bool            `json:"valid"`
}

// Recompute sets the top-level Valid flag to the conjunction of all
// per-document validity.
func (s *ValidationSummary) Recompute() {
	s.Valid = true
	for _, r := range s.Workflows.Results {
		if !r.Valid {
			s.Valid = false
			return
		}
	}
	for _, r := range s.Personas.Results {
		if !r.Valid {
			s.Valid = false
			return
		}
	}
}
