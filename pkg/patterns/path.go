package patterns

import (
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// ValidatePath checks that file is a normalized, slash-separated path
// relative to the configuration root.
func ValidatePath(file string) error {
	switch {
	case file == "":
		return invalidPath(file, "path is empty")
	case strings.ContainsRune(file, '\\'):
		return invalidPath(file, "path must use forward slashes")
	case strings.HasPrefix(file, "/"):
		return invalidPath(file, "path must be relative")
	case hasDriveLetter(file):
		return invalidPath(file, "path must not carry a drive letter")
	}

	for _, segment := range strings.Split(file, "/") {
		switch segment {
		case "":
			return invalidPath(file, "path contains an empty segment")
		case ".", "..":
			return invalidPath(file, "path contains a relative segment")
		}
	}
	return nil
}

func hasDriveLetter(file string) bool {
	if len(file) < 2 || file[1] != ':' {
		return false
	}
	c := file[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func invalidPath(file, reason string) error {
	return errors.Newf(errors.ErrInvalidPath, "invalid path %q: %s", file, reason).
		WithDetail("path", file)
}
