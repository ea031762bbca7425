package config

import (
	"strings"
)

// GenerateConfigContent returns the example configuration. With commented
// set, every value line is commented out so the file is inert until edited.
func GenerateConfigContent(commented bool) string {
	if !commented {
		return ExampleContent()
	}
	return commentOutConfigValues(ExampleContent())
}

// commentOutConfigValues comments out every line that is not blank and not
// already a comment, section headers included, so the result parses to an
// empty document
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
