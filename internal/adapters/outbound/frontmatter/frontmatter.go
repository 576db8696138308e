// Package frontmatter extracts the "---"-delimited YAML header and free-text
// body from crew documents.
package frontmatter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crewlint/crewlint/internal/domain"
)

const delimiter = "---"

// Extractor implements domain.DocumentParser.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Parse reads the document at path and splits it into header fields and
// body. The header must start on the first line with a line of exactly
// "---" and be closed by a second one.
func (e *Extractor) Parse(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	header, body, err := split(string(data))
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(header), &fields); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	return &domain.Document{Path: path, Fields: fields, Body: body}, nil
}

// split separates the raw document into header and body text.
func split(content string) (header, body string, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != delimiter {
		return "", "", fmt.Errorf("document must start with a %q frontmatter delimiter", delimiter)
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == delimiter {
			header = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return header, body, nil
		}
	}

	return "", "", fmt.Errorf("frontmatter is missing its closing %q delimiter", delimiter)
}
