package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// GatherFiles collects the files with one of the given extensions. Roots may be files or directories;
// directories are not descended into. The result holds absolute, sorted paths.
func GatherFiles(roots []string, extensions []string) ([]string, error) {
	matches := func(name string) bool {
		return slices.Contains(extensions, strings.ToLower(filepath.Ext(name)))
	}

	appendAbsPath := func(paths []string, path string) ([]string, error) {
		path, err := filepath.Abs(path)
		if err != nil {
			return paths, fmt.Errorf("absolute path: %w", err)
		}
		return append(paths, path), nil
	}

	var paths []string

	for _, root := range roots {
		fi, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if fi.Mode().IsRegular() {
			if !matches(fi.Name()) {
				continue
			}

			paths, err = appendAbsPath(paths, root)
			if err != nil {
				return nil, err
			}

		} else if fi.Mode().IsDir() {
			entries, err := os.ReadDir(root)
			if err != nil {
				return nil, fmt.Errorf("read dir: %w", err)
			}

			for _, entry := range entries {
				if !entry.Type().IsRegular() || !matches(entry.Name()) {
					continue
				}

				paths, err = appendAbsPath(paths, filepath.Join(root, entry.Name()))
				if err != nil {
					return nil, err
				}
			}
		} else {
			return nil, fmt.Errorf("path '%s' neither directory nor file", root)
		}
	}

	slices.Sort(paths)

	return paths, nil
}
