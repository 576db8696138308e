package application

import (
	"path/filepath"
	"strings"

	"github.com/crewlint/crewlint/internal/domain"
)

// rootednessResolver decides whether a persona document is a root persona
// (no ancestor directory under the tree root also contains the marker) or
// inherits from an ancestor. The inference is purely structural: document
// contents never matter, only directory shape.
//
// Marker lookups are cached per run, so sibling documents sharing a path
// prefix resolve their common ancestors with one filesystem check.
type rootednessResolver struct {
	scanner domain.TreeScanner
	root    string
	marker  string
	cache   map[string]bool
}

func newRootednessResolver(scanner domain.TreeScanner, root, marker string) *rootednessResolver {
	return &rootednessResolver{
		scanner: scanner,
		root:    root,
		marker:  marker,
		cache:   make(map[string]bool),
	}
}

// IsRoot walks the ancestor chain between the tree root and dir, from the
// root downward, excluding dir itself. The first ancestor containing the
// marker makes dir non-root.
func (rr *rootednessResolver) IsRoot(dir string) bool {
	rel, err := filepath.Rel(rr.root, dir)
	if err != nil || rel == "." {
		return true
	}

	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) == 1 {
		// Directly under the tree root.
		return true
	}

	ancestor := rr.root
	for _, seg := range segments[:len(segments)-1] {
		ancestor = filepath.Join(ancestor, seg)
		if rr.hasMarker(ancestor) {
			return false
		}
	}
	return true
}

func (rr *rootednessResolver) hasMarker(dir string) bool {
	if v, ok := rr.cache[dir]; ok {
		return v
	}
	v := rr.scanner.HasMarker(dir, rr.marker)
	rr.cache[dir] = v
	return v
}
