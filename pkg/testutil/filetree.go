package testutil

import (
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// FileTree maps names to file contents (string) or nested trees
type FileTree map[string]interface{}

func createFileTree(t *testing.T, fs afero.Fs, base string, tree FileTree) {
	t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(base, name)
		switch v := tree[name].(type) {
		case string:
			writeFile(t, fs, path, v)
		case FileTree:
			if err := fs.MkdirAll(path, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", path, err)
			}
			createFileTree(t, fs, path, v)
		default:
			t.Fatalf("Unsupported file tree entry %s: %T", name, v)
		}
	}
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
