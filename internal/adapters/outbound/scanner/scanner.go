package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

// TreeScanner implements domain.TreeScanner by walking the filesystem.
type TreeScanner struct {
	extraSkip map[string]bool
}

// New creates a TreeScanner. excludePaths are directory names skipped
// during traversal in addition to the built-in set.
func New(excludePaths ...string) *TreeScanner {
	extra := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extra[strings.TrimSuffix(p, "/")] = true
	}
	return &TreeScanner{extraSkip: extra}
}

// FindDocumentDirs returns every directory under root containing the
// marker file, sorted by path. Unreadable directories are skipped
// silently; traversal continues into siblings. Directory names and depth
// carry no meaning here, only marker presence.
func (s *TreeScanner) FindDocumentDirs(root, marker string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	walkErr := filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: drop this subtree, keep scanning siblings.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] || s.extraSkip[d.Name()] {
			return filepath.SkipDir
		}
		if s.HasMarker(path, marker) {
			dirs = append(dirs, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Strings(dirs)
	return dirs, nil
}

// HasMarker reports whether dir contains marker as a regular file.
func (s *TreeScanner) HasMarker(dir, marker string) bool {
	info, err := os.Stat(filepath.Join(dir, marker))
	return err == nil && info.Mode().IsRegular()
}
