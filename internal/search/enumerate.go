package search

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPattern matches the text corpus files the scanner targets.
const DefaultPattern = "*.txt"

// Enumerate walks the tree rooted at root and returns every file whose base
// name matches the glob pattern, at any depth, sorted lexicographically.
// Sorting makes partitioning reproducible across runs with identical inputs.
// A missing or non-directory root is an error; unreadable subtrees are
// skipped so one bad directory cannot abort the whole enumeration.
func Enumerate(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %q is not a directory", root)
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil // skip unreadable entries
		}
		if info.IsDir() {
			return nil
		}
		ok, matchErr := filepath.Match(pattern, info.Name())
		if matchErr != nil {
			return fmt.Errorf("pattern %q: %w", pattern, matchErr)
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerating %q: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
