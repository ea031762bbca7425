package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/lintlayer/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	for _, name := range []string{
		"Header", "Error", "Warning", "Muted", "FilePath", "RuleName",
		"Source", "Pattern", "Ignored", "SeverityOff", "SeverityWarn", "SeverityError",
	} {
		_, ok := styles.StyleRegistry[name]
		assert.True(t, ok, "style %s should exist", name)
	}
}

func TestGetStyleUnknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	data := []byte("colors:\n  accent:\n    light: \"#000000\"\n    dark: \"#FFFFFF\"\nstyles:\n  Header:\n    bold: true\n    foreground: accent\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, styles.LoadStyles(path))
	t.Cleanup(func() {
		_ = styles.LoadStyles("styles.yaml")
	})

	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Header").GetBold())

	assert.Error(t, styles.LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, styles.LoadStylesFromData([]byte("colors: [")))
}
