package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeTheme(t *testing.T, root, name string, files ...string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, file := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(file), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
	return dir
}

func TestAvailable(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "light")
	makeTheme(t, root, "dark")
	if err := os.WriteFile(filepath.Join(root, "README"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Available(root)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if strings.Join(got, ",") != "dark,light" {
		t.Fatalf("unexpected themes %v", got)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "light", RequiredFiles...)

	got, err := Find(root, "light")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	want := Theme{Name: "light", Dir: filepath.Join(root, "light")}
	if got != want {
		t.Fatalf("theme mismatch\nwant: %+v\n got: %+v", want, got)
	}
}

func TestFindCustomDirectory(t *testing.T) {
	dir := makeTheme(t, t.TempDir(), "mine", RequiredFiles...)

	got, err := Find("unused", dir)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !got.Custom || got.Name != "mine" || got.Dir != dir {
		t.Fatalf("unexpected theme %+v", got)
	}

	if _, err := Find("unused", filepath.Join(dir, "nope")); err == nil {
		t.Fatalf("expected missing custom directory to fail")
	}
}

func TestFindUnknownListsAvailable(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "light", RequiredFiles...)

	_, err := Find(root, "neon")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "light") {
		t.Fatalf("error should list available themes: %v", err)
	}
}

func TestFindMissingFile(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "partial", "defaults.yaml", "template.html")

	_, err := Find(root, "partial")
	if err == nil || !strings.Contains(err.Error(), StyleSheet) {
		t.Fatalf("expected missing %s error, got %v", StyleSheet, err)
	}
}

func TestCopyTo(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "light", RequiredFiles...)
	th, err := Find(root, "light")
	if err != nil {
		t.Fatalf("find: %v", err)
	}

	dst := filepath.Join(t.TempDir(), "html", "theme", "light")
	if err := th.CopyTo(dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, StyleSheet))
	if err != nil || string(data) != StyleSheet {
		t.Fatalf("stylesheet not copied: %q %v", data, err)
	}
}
