package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// Normalize turns a file system path into a root-relative path with forward
// slashes. Relative inputs are taken relative to the working directory when
// it lies inside the root, and relative to the root otherwise. Paths outside
// the root are rejected.
func (p *paths) Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidPath, "empty path").WithDetail("path", path)
	}

	abs := expandHome(path)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(p.relativeBase(), abs)
	}
	abs = filepath.Clean(abs)

	rel, ok := within(p.root, abs)
	if !ok || rel == "." {
		return "", errors.Newf(errors.ErrInvalidPath, "%s is outside the project root %s", path, p.root).
			WithDetail("path", path)
	}
	return filepath.ToSlash(rel), nil
}

// relativeBase is the directory relative inputs are joined to
func (p *paths) relativeBase() string {
	cwd, err := os.Getwd()
	if err != nil {
		return p.root
	}
	if rel, ok := within(p.root, cwd); ok {
		return filepath.Join(p.root, rel)
	}

	// either side may be reached through a symlink (/var vs /private/var)
	realRoot, err := filepath.EvalSymlinks(p.root)
	if err != nil {
		return p.root
	}
	realCwd, err := filepath.EvalSymlinks(cwd)
	if err != nil {
		return p.root
	}
	if rel, ok := within(realRoot, realCwd); ok {
		return filepath.Join(p.root, rel)
	}
	return p.root
}

// within returns path relative to root, if path is root or below it
func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
