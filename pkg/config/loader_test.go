package config

import (
	"testing"
	"time"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/rules"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teamConfig = `
[rules]
no-console = "error"
max-lines = ["warn", 500]

[policies.no-moment]
name = "moment"
message = "Please use the dayjs library instead of moment.js."

[[overrides]]
name = "legacy"
files = ["legacy/**"]
[overrides.rules]
max-lines = "off"
`

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestLoaderComposesSources(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/p/example.toml": ExampleContent(),
		"/p/team.toml":    teamConfig,
	})

	cfg, err := NewLoader(fs, []string{"/p/example.toml", "/p/team.toml"}, nil).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"/p/example.toml", "/p/team.toml"}, cfg.Sources)
	assert.Equal(t, rules.Error, cfg.Base["no-console"].Severity, "later file wins")
	assert.True(t, cfg.Base["max-lines"].Equal(rules.NewSetting(rules.Warn, int64(500))))
	assert.Contains(t, cfg.Base, "eqeqeq")

	assert.Equal(t, []string{"no-antd", "no-lodash-memoize", "no-moment", "no-superset-theme"}, cfg.Registry.Keys())

	ids := make([]string, len(cfg.Overrides))
	for i, o := range cfg.Overrides {
		ids[i] = o.Name
	}
	assert.Equal(t, []string{"typescript", "components", "tests", "legacy"}, ids)
	assert.Equal(t, []string{"node_modules/**", "dist/**"}, cfg.IgnorePatterns())
}

func TestLoaderBuildsResolver(t *testing.T) {
	fs := memFs(t, map[string]string{"/p/.lintlayer.toml": ExampleContent()})
	loader := NewLoader(fs, []string{"/p/.lintlayer.toml"}, nil)

	r, err := loader.Build()
	require.NoError(t, err)

	got, err := r.Resolve("src/components/Select/index.tsx")
	require.NoError(t, err)

	assert.Equal(t, rules.Off, got["no-unused-vars"].Severity)
	assert.Equal(t, rules.Warn, got["@typescript-eslint/no-unused-vars"].Severity)
	assert.Equal(t, rules.Warn, got["no-console"].Severity)

	restricted := got["no-restricted-imports"].Options[0].(map[string]interface{})["paths"].([]interface{})
	names := make([]string, len(restricted))
	for i, f := range restricted {
		names[i] = f.(policy.Fragment).Name
	}
	assert.Equal(t, []string{"lodash/memoize", "moment", "@superset-ui/core"}, names)

	// each build composes a fresh registry, so reloads keep working
	_, err = loader.Builder()()
	require.NoError(t, err)
}

func TestLoaderEnvironmentSelectsIgnoreGroups(t *testing.T) {
	fs := memFs(t, map[string]string{"/p/.lintlayer.toml": ExampleContent()})

	t.Setenv("LINTLAYER_ENV", "production")
	r, err := NewLoader(fs, []string{"/p/.lintlayer.toml"}, nil).Build()
	require.NoError(t, err)

	ignored, err := r.IsIgnored("src/Button.test.tsx")
	require.NoError(t, err)
	assert.True(t, ignored)

	r, err = NewLoader(fs, []string{"/p/.lintlayer.toml"}, map[string]interface{}{
		FlagEnvironment: "development",
	}).Build()
	require.NoError(t, err)
	ignored, err = r.IsIgnored("src/Button.test.tsx")
	require.NoError(t, err)
	assert.False(t, ignored)
}

func TestLoaderConflictingPolicies(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/p/a.toml": "[policies.no-moment]\nname = \"moment\"\n",
		"/p/b.toml": "[policies.no-moment]\nname = \"moment-timezone\"\n",
		"/p/c.toml": "[policies.no-moment]\nname = \"moment\"\n",
	})

	_, err := NewLoader(fs, []string{"/p/a.toml", "/p/c.toml"}, nil).Load()
	require.NoError(t, err, "identical fragments may repeat")

	_, err = NewLoader(fs, []string{"/p/a.toml", "/p/b.toml"}, nil).Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateKey))
	assert.Equal(t, "/p/b.toml", errors.GetErrorDetails(err)["source"])
	assert.Equal(t, "no-moment", errors.GetErrorDetails(err)["key"])
}

func TestConfigBuildSealsRegistry(t *testing.T) {
	fs := memFs(t, map[string]string{"/p/.lintlayer.toml": ExampleContent()})
	cfg, err := NewLoader(fs, []string{"/p/.lintlayer.toml"}, nil).Load()
	require.NoError(t, err)

	first, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, cfg.Registry.Sealed())

	second, err := cfg.Build()
	require.NoError(t, err, "a sealed registry can still be read")

	a, err := first.Resolve("src/app.ts")
	require.NoError(t, err)
	b, err := second.Resolve("src/app.ts")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	err = cfg.Registry.Register("no-dayjs", policy.Fragment{Name: "dayjs"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrRegistrySealed))
}

func TestLoaderUnknownReferenceFailsBuild(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/p/.lintlayer.toml": "[rules]\nno-restricted-imports = [\"error\", { paths = [{ \"$policy\" = \"no-lodash\" }] }]\n",
	})

	_, err := NewLoader(fs, []string{"/p/.lintlayer.toml"}, nil).Build()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownPolicyReference))
	assert.Equal(t, "no-lodash", errors.GetErrorDetails(err)["key"])
}

func TestLoadSettingsLayers(t *testing.T) {
	s, err := LoadSettings(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "development", s.Environment)
	assert.Equal(t, "auto", s.Format)
	assert.Equal(t, 300*time.Millisecond, s.Watch.Debounce)

	docs := []*Document{{Source: "a", Environment: "staging"}, {Source: "b"}}
	s, err = LoadSettings(docs, nil)
	require.NoError(t, err)
	assert.Equal(t, "staging", s.Environment)

	t.Setenv("LINTLAYER_ENV", "production")
	t.Setenv("LINTLAYER_WATCH_DEBOUNCE", "1s")
	s, err = LoadSettings(docs, nil)
	require.NoError(t, err)
	assert.Equal(t, "production", s.Environment)
	assert.Equal(t, time.Second, s.Watch.Debounce)

	s, err = LoadSettings(docs, map[string]interface{}{
		FlagEnvironment: "ci",
		FlagFormat:      "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "ci", s.Environment)
	assert.Equal(t, "json", s.Format)

	s, err = LoadSettings(docs, map[string]interface{}{FlagEnvironment: ""})
	require.NoError(t, err)
	assert.Equal(t, "production", s.Environment, "empty flags do not override")
}

func TestLoaderReadsSettingsFromFiles(t *testing.T) {
	fs := memFs(t, map[string]string{
		"/p/.lintlayer.toml": "format = \"json\"\n\n[watch]\ndebounce = \"2s\"\n\n[rules]\nno-console = \"warn\"\n",
		"/p/local.yaml":      "format: yaml\n",
	})

	cfg, err := NewLoader(fs, []string{"/p/.lintlayer.toml"}, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Settings.Format)
	assert.Equal(t, 2*time.Second, cfg.Settings.Watch.Debounce)
	assert.Equal(t, "development", cfg.Settings.Environment)

	cfg, err = NewLoader(fs, []string{"/p/.lintlayer.toml", "/p/local.yaml"}, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Settings.Format, "later files win")
	assert.Equal(t, 2*time.Second, cfg.Settings.Watch.Debounce)

	cfg, err = NewLoader(fs, []string{"/p/.lintlayer.toml"}, map[string]interface{}{FlagFormat: "toml"}).Load()
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Settings.Format, "flags win over files")
}
