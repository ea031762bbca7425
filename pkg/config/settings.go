package config

import (
	"strings"
	"time"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable lintlayer reads
const EnvPrefix = "LINTLAYER_"

// Settings are the non-rule knobs of a run
type Settings struct {
	// Environment selects ignore groups
	Environment string `koanf:"environment"`
	// Format is the default output format of the CLI
	Format string        `koanf:"format"`
	Watch  WatchSettings `koanf:"watch"`
}

// WatchSettings tune the configuration watcher
type WatchSettings struct {
	Debounce time.Duration `koanf:"debounce"`
}

// Flag keys accepted by LoadSettings
const (
	FlagEnvironment   = "environment"
	FlagFormat        = "format"
	FlagWatchDebounce = "watch" + keyDelim + "debounce"
)

// envKey maps LINTLAYER_FOO_BAR to foo::bar. LINTLAYER_ENV is accepted as a
// short form of LINTLAYER_ENVIRONMENT.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "env" {
		return FlagEnvironment
	}
	return strings.ReplaceAll(key, "_", keyDelim)
}

// settings returns the settings keys a document sets
func (d *Document) settings() map[string]interface{} {
	layer := make(map[string]interface{})
	if d.Environment != "" {
		layer[FlagEnvironment] = d.Environment
	}
	if d.Format != "" {
		layer[FlagFormat] = d.Format
	}
	if d.Watch.Debounce != "" {
		layer[FlagWatchDebounce] = d.Watch.Debounce
	}
	return layer
}

// LoadSettings layers defaults, the environment named by the documents,
// LINTLAYER_* variables and flags, in that order. Flag values that are
// empty strings are skipped.
func LoadSettings(docs []*Document, flags map[string]interface{}) (Settings, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	for _, doc := range docs {
		layer := doc.settings()
		if len(layer) == 0 {
			continue
		}
		if err := k.Load(confmap.Provider(layer, keyDelim), nil); err != nil {
			return Settings{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to apply settings from %s", doc.Source)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, keyDelim, envKey), nil); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	if len(flags) > 0 {
		set := make(map[string]interface{}, len(flags))
		for key, val := range flags {
			if s, ok := val.(string); ok && s == "" {
				continue
			}
			set[key] = val
		}
		if err := k.Load(confmap.Provider(set, keyDelim), nil); err != nil {
			return Settings{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply flags")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return Settings{}, errors.Wrap(err, errors.ErrConfigInvalid, "invalid settings")
	}
	s.Environment = strings.TrimSpace(s.Environment)
	return s, nil
}
