package config

import (
	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/logging"
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/rules"
	"github.com/spf13/afero"
)

// Config is the composition of every loaded document plus settings
type Config struct {
	Settings  Settings
	Sources   []string
	Base      rules.RuleSet
	Registry  *policy.Registry
	Overrides []resolver.Override
	Ignore    []IgnoreGroup
}

// IgnorePatterns returns the patterns of the ignore groups active in the
// configured environment, in declaration order
func (c *Config) IgnorePatterns() []string {
	var out []string
	for _, g := range c.Ignore {
		if g.AppliesTo(c.Settings.Environment) {
			out = append(out, g.Patterns...)
		}
	}
	return out
}

// Build validates the configuration and returns a resolver for it. The
// policy registry is sealed afterwards. Build only reads the registry, so
// it may be called again.
func (c *Config) Build() (*resolver.Resolver, error) {
	return resolver.LoadWithOptions(c.Base, c.Overrides, c.Registry, resolver.Options{
		IgnorePatterns: c.IgnorePatterns(),
	})
}

// Compose merges documents in order. Base rules merge per name with later
// documents winning, overrides and ignore groups are appended, and
// each document's policies are merged into one registry.
func Compose(docs []*Document, settings Settings) (*Config, error) {
	cfg := &Config{
		Settings: settings,
		Base:     rules.RuleSet{},
		Registry: policy.NewRegistry(),
	}

	for _, doc := range docs {
		cfg.Sources = append(cfg.Sources, doc.Source)
		cfg.Base.Apply(doc.Rules)

		if err := cfg.Registry.Merge(doc.PolicyRegistry()); err != nil {
			key, _ := errors.GetErrorDetails(err)["key"].(string)
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "policy %q in %s", key, doc.Source).
				WithDetail("key", key).
				WithDetail("source", doc.Source)
		}

		cfg.Overrides = append(cfg.Overrides, doc.ResolverOverrides()...)
		cfg.Ignore = append(cfg.Ignore, doc.Ignore...)
	}
	return cfg, nil
}

// Loader reads configuration files through an afero filesystem
type Loader struct {
	fs    afero.Fs
	files []string
	flags map[string]interface{}
}

// NewLoader creates a loader for files, applied in order. flags carry
// command line settings keyed like the Flag* constants.
func NewLoader(fs afero.Fs, files []string, flags map[string]interface{}) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, files: files, flags: flags}
}

// Files returns the files the loader reads
func (l *Loader) Files() []string {
	return l.files
}

// Load reads every file and composes the result
func (l *Loader) Load() (*Config, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	docs := make([]*Document, 0, len(l.files))
	for _, f := range l.files {
		doc, err := LoadDocument(l.fs, f)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("file", f).
			Int("rules", len(doc.Rules)).
			Int("overrides", len(doc.Overrides)).
			Int("policies", len(doc.Policies)).
			Msg("Loaded configuration file")
		docs = append(docs, doc)
	}

	settings, err := LoadSettings(docs, l.flags)
	if err != nil {
		return nil, err
	}

	cfg, err := Compose(docs, settings)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("environment", settings.Environment).
		Strs("sources", cfg.Sources).
		Msg("Configuration composed")
	return cfg, nil
}

// Build loads the files and builds a resolver in one step
func (l *Loader) Build() (*resolver.Resolver, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// Builder adapts the loader for resolver.Holder reloads
func (l *Loader) Builder() resolver.Builder {
	return l.Build
}
