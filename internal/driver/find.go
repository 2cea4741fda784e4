// Package driver ties the pieces together: it finds PO files and runs
// checks and statistics over many files in parallel.
package driver

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FindFiles recursively finds all gettext files (matching the *.po
// pattern) under the given paths. Paths pointing directly to a .po
// file are kept as-is. Hidden files and directories are skipped. With
// no paths the current directory is searched.
//
// The returned list is sorted and without duplicates. Unreadable
// directory entries do not abort the walk, they are reported as
// warnings.
func FindFiles(paths []string) (files, warnings []string) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	seen := make(map[string]bool)
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("could not read entry: %v", err))
				return nil
			}
			name := d.Name()
			if path != root && strings.HasPrefix(name, ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && strings.HasSuffix(name, ".po") {
				path = strings.TrimPrefix(path, "./")
				if !seen[path] {
					seen[path] = true
					files = append(files, path)
				}
			}
			return nil
		})
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not read entry: %v", err))
		}
	}
	// Сортируем для детерминированного порядка.
	sort.Strings(files)
	return files, warnings
}
