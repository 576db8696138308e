package domain

// Document is the parsed form of a crew document: the frontmatter header
// decoded into an untyped key-value map plus the free-text body after the
// closing delimiter.
type Document struct {
	Path   string         `json:"path"`
	Fields map[string]any `json:"fields"`
	Body   string         `json:"body"`
}

// DocumentParser extracts the frontmatter header and body from a document
// file. It returns an error for unreadable files, a missing or unterminated
// header, or a header that is not a YAML mapping.
type DocumentParser interface {
	Parse(path string) (*Document, error)
}

// TreeScanner discovers document directories beneath a root.
type TreeScanner interface {
	// FindDocumentDirs returns every directory under root (at any depth)
	// containing the marker file, sorted by path.
	FindDocumentDirs(root, marker string) ([]string, error)

	// HasMarker reports whether dir contains the marker as a regular file.
	HasMarker(dir, marker string) bool
}

// ConfigLoader loads the project configuration for a crew tree.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// GitInfo provides repository metadata for summary stamping.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
