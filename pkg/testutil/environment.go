package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // afero.MemMapFs, nothing touches the disk
	EnvIsolated                  // real filesystem in a temp directory
)

// clearedVars are unset for the duration of a test so the developer's own
// settings do not leak in
var clearedVars = []string{
	"LINTLAYER_ROOT",
	"LINTLAYER_ENV",
	"LINTLAYER_ENVIRONMENT",
	"LINTLAYER_FORMAT",
	"LINTLAYER_WATCH_DEBOUNCE",
	"NO_COLOR",
}

// TestEnvironment is an isolated lintlayer setup
type TestEnvironment struct {
	Root      string
	ConfigDir string
	FS        afero.Fs
	Type      EnvType

	t *testing.T
}

// NewTestEnvironment creates the directories and points LINTLAYER_CONFIG_DIR
// and XDG_STATE_HOME at them. The log file always goes to a real temp dir.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	for _, key := range clearedVars {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}

	env := &TestEnvironment{t: t, Type: envType}
	stateHome := t.TempDir()

	switch envType {
	case EnvMemoryOnly:
		env.FS = afero.NewMemMapFs()
		env.Root = "/virtual/project"
		env.ConfigDir = "/virtual/config/lintlayer"
	case EnvIsolated:
		base := t.TempDir()
		env.FS = afero.NewOsFs()
		env.Root = filepath.Join(base, "project")
		env.ConfigDir = filepath.Join(base, "config", "lintlayer")
	}

	for _, dir := range []string{env.Root, env.ConfigDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("LINTLAYER_CONFIG_DIR", env.ConfigDir)

	return env
}

// Path joins rel onto the project root
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// WriteFile writes content at rel below the project root and returns the
// absolute path
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := env.Path(rel)
	writeFile(env.t, env.FS, path, content)
	return path
}

// WriteConfig writes the project configuration file (.lintlayer.toml or
// .lintlayer.yaml, by format) and returns its path
func (env *TestEnvironment) WriteConfig(format, content string) string {
	env.t.Helper()
	return env.WriteFile(".lintlayer."+format, content)
}

// WriteUserFile writes content below the user configuration directory
func (env *TestEnvironment) WriteUserFile(name, content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigDir, name)
	writeFile(env.t, env.FS, path, content)
	return path
}

// ReadFile returns the content at rel below the project root
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, env.Path(rel))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// WithFileTree creates a file tree below the project root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.Root, tree)
}

// Chdir moves the process into rel below the project root until the test
// ends. Only isolated environments have a directory to move into.
func (env *TestEnvironment) Chdir(rel string) {
	env.t.Helper()
	if env.Type != EnvIsolated {
		env.t.Fatalf("Chdir needs an isolated environment")
	}
	dir := env.Path(rel)
	if err := env.FS.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", dir, err)
	}
	old, err := os.Getwd()
	if err != nil {
		env.t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		env.t.Fatalf("Failed to change to %s: %v", dir, err)
	}
	env.t.Cleanup(func() { _ = os.Chdir(old) })
}
