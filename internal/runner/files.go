package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/donaldgifford/carrylint/internal/parser"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// collectFiles expands paths into the list of source files to lint, in
// input order without duplicates. Directories are walked for files with a
// lintable extension. Excluded files are dropped even when named
// explicitly.
func collectFiles(paths, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] || excluded(path, exclude) {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if parser.IsSource(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	}

	return files, nil
}

// excluded reports whether path matches any pattern, either as a whole
// slash-separated path or by its base name.
func excluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
