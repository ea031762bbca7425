package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	for _, envType := range []EnvType{EnvMemoryOnly, EnvIsolated} {
		t.Run(map[EnvType]string{EnvMemoryOnly: "memory", EnvIsolated: "isolated"}[envType], func(t *testing.T) {
			t.Setenv("LINTLAYER_ENV", "production")
			env := NewTestEnvironment(t, envType)

			_, set := os.LookupEnv("LINTLAYER_ENV")
			assert.False(t, set)
			assert.Equal(t, env.ConfigDir, os.Getenv("LINTLAYER_CONFIG_DIR"))

			ok, err := afero.DirExists(env.FS, env.Root)
			require.NoError(t, err)
			assert.True(t, ok)

			path := env.WriteConfig("toml", "[rules]\n")
			assert.Equal(t, filepath.Join(env.Root, ".lintlayer.toml"), path)
			assert.Equal(t, "[rules]\n", env.ReadFile(".lintlayer.toml"))
		})
	}
}

func TestWithFileTree(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)
	env.WithFileTree(FileTree{
		"a.yaml": "rules: {}\n",
		"teams": FileTree{
			"web.toml": "[rules]\n",
		},
	})

	assert.Equal(t, "rules: {}\n", env.ReadFile("a.yaml"))
	assert.Equal(t, "[rules]\n", env.ReadFile("teams/web.toml"))

	p := env.WriteUserFile("styles.yaml", "styles: {}\n")
	data, err := afero.ReadFile(env.FS, p)
	require.NoError(t, err)
	assert.Equal(t, "styles: {}\n", string(data))
}

func TestChdir(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	t.Run("isolated", func(t *testing.T) {
		env := NewTestEnvironment(t, EnvIsolated)
		env.Chdir("src")

		cwd, err := os.Getwd()
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(env.Path("src"))
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(cwd)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
