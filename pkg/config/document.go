package config

import (
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// keyDelim separates koanf key paths. Rule names routinely contain dots
// and slashes so neither can be used.
const keyDelim = "::"

// Formats understood by ParseDocument
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// IgnoreGroup lists patterns ignored in the given environments. An empty
// Environments list applies everywhere.
type IgnoreGroup struct {
	Environments []string `koanf:"environments" json:"environments,omitempty" yaml:"environments,omitempty" toml:"environments,omitempty"`
	Patterns     []string `koanf:"patterns" json:"patterns" yaml:"patterns" toml:"patterns"`
}

// AppliesTo reports whether the group is active in env
func (g IgnoreGroup) AppliesTo(env string) bool {
	if len(g.Environments) == 0 {
		return true
	}
	for _, e := range g.Environments {
		if strings.EqualFold(e, env) {
			return true
		}
	}
	return false
}

// Override is the on-disk form of a resolver override
type Override struct {
	Name          string        `koanf:"name"`
	Files         []string      `koanf:"files"`
	ExcludedFiles []string      `koanf:"excluded_files"`
	Rules         rules.RuleSet `koanf:"rules"`
}

// DocumentWatch is the [watch] table of a configuration file
type DocumentWatch struct {
	Debounce string `koanf:"debounce"`
}

// Document is one parsed configuration file
type Document struct {
	Source      string                     `koanf:"-"`
	Environment string                     `koanf:"environment"`
	Format      string                     `koanf:"format"`
	Watch       DocumentWatch              `koanf:"watch"`
	Rules       rules.RuleSet              `koanf:"rules"`
	Policies    map[string]policy.Fragment `koanf:"policies"`
	Overrides   []Override                 `koanf:"overrides"`
	Ignore      []IgnoreGroup              `koanf:"ignore"`
}

// ResolverOverrides converts the document overrides for the resolver
func (d *Document) ResolverOverrides() []resolver.Override {
	out := make([]resolver.Override, len(d.Overrides))
	for i, o := range d.Overrides {
		out[i] = resolver.Override{
			Name:          o.Name,
			Files:         o.Files,
			ExcludedFiles: o.ExcludedFiles,
			Rules:         o.Rules,
		}
	}
	return out
}

// PolicyRegistry returns the document's policies registered in key order,
// since the file's own order does not survive parsing
func (d *Document) PolicyRegistry() *policy.Registry {
	r := policy.NewRegistry()
	keys := make([]string, 0, len(d.Policies))
	for key := range d.Policies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		// keys are unique within one document and the registry is fresh
		_ = r.Register(key, d.Policies[key])
	}
	return r
}

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrConfigLoad, "unsupported configuration format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func parserFor(format string) (koanf.Parser, error) {
	switch format {
	case FormatTOML:
		return toml.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported configuration format %q", format)
	}
}

// LoadDocument reads and parses one configuration file from fs
func LoadDocument(fs afero.Fs, path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
			WithDetail("path", path)
	}
	return ParseDocument(data, format, path)
}

// ParseDocument parses configuration bytes. source names the document in
// errors and traces.
func ParseDocument(data []byte, format, source string) (*Document, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(keyDelim)
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", source).
			WithDetail("source", source)
	}

	doc := &Document{}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:      doc,
			ErrorUnused: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				settingHookFunc(),
				stringToSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", doc, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid configuration in %s", source).
			WithDetail("source", source)
	}
	doc.Source = source

	if doc.Watch.Debounce != "" {
		if _, err := time.ParseDuration(doc.Watch.Debounce); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid watch debounce in %s", source).
				WithDetail("source", source)
		}
	}

	if doc.Rules == nil {
		doc.Rules = rules.RuleSet{}
	}
	for i := range doc.Overrides {
		if doc.Overrides[i].Rules == nil {
			doc.Overrides[i].Rules = rules.RuleSet{}
		}
	}
	return doc, nil
}

var settingType = reflect.TypeOf(rules.Setting{})

// settingHookFunc turns raw rule values into rules.Setting, decoding policy
// references in their options on the way
func settingHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != settingType || f == settingType {
			return data, nil
		}
		decoded, err := policy.Decode(data)
		if err != nil {
			return nil, err
		}
		return rules.ParseSetting(decoded)
	}
}

// stringToSliceHookFunc lets a single pattern stand in for a list
func stringToSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		return []string{reflect.ValueOf(data).String()}, nil
	}
}
