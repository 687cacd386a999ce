// Package theme locates slide themes on disk.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StyleSheet is the theme file linked from generated pages.
const StyleSheet = "csc.css"

// RequiredFiles must exist in every theme directory.
var RequiredFiles = []string{"defaults.yaml", "template.html", StyleSheet}

// ErrNotFound is returned when a named theme is not under the theme root.
var ErrNotFound = errors.New("theme: not found")

// Theme is a validated theme directory.
type Theme struct {
	Name   string
	Dir    string
	Custom bool
}

// Available lists the theme directories under root, sorted by name.
func Available(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", root, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Find resolves name under root. A name containing a path separator is
// taken as a custom theme directory.
func Find(root, name string) (Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Theme{}, errors.New("theme: name is required")
	}

	var t Theme
	if strings.ContainsRune(name, os.PathSeparator) || strings.Contains(name, "/") {
		t = Theme{Name: filepath.Base(filepath.Clean(name)), Dir: name, Custom: true}
		if !isDir(t.Dir) {
			return Theme{}, fmt.Errorf("theme: nonexistent theme directory %s", t.Dir)
		}
	} else {
		t = Theme{Name: name, Dir: filepath.Join(root, name)}
		if !isDir(t.Dir) {
			available, _ := Available(root)
			return Theme{}, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(available, ", "))
		}
	}

	for _, file := range RequiredFiles {
		info, err := os.Stat(filepath.Join(t.Dir, file))
		if err != nil || !info.Mode().IsRegular() {
			return Theme{}, fmt.Errorf("theme: %s missing from %s", file, t.Dir)
		}
	}
	return t, nil
}

// CopyTo copies the theme directory into dst.
func (t Theme) CopyTo(dst string) error {
	if err := os.CopyFS(dst, os.DirFS(t.Dir)); err != nil {
		return fmt.Errorf("theme: copy %s: %w", t.Name, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
