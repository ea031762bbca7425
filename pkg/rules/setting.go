package rules

import (
	"reflect"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/mitchellh/copystructure"
)

// Setting is the severity and options payload applied to one rule
type Setting struct {
	Severity Severity      `json:"severity" yaml:"severity" toml:"severity"`
	Options  []interface{} `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

// NewSetting builds a Setting from a severity and its options
func NewSetting(severity Severity, options ...interface{}) Setting {
	if len(options) == 0 {
		return Setting{Severity: severity}
	}
	return Setting{Severity: severity, Options: options}
}

// Equal compares two settings as a whole. A nil and an empty options
// payload are the same payload.
func (s Setting) Equal(other Setting) bool {
	if s.Severity != other.Severity {
		return false
	}
	if len(s.Options) == 0 && len(other.Options) == 0 {
		return true
	}
	return reflect.DeepEqual(s.Options, other.Options)
}

// Clone returns a deep copy so the caller can never reach shared payload state
func (s Setting) Clone() Setting {
	if len(s.Options) == 0 {
		return Setting{Severity: s.Severity}
	}
	return Setting{
		Severity: s.Severity,
		Options:  copystructure.Must(copystructure.Copy(s.Options)).([]interface{}),
	}
}

// ParseSetting converts a raw configuration value into a Setting.
//
// Accepted shapes:
//   - a severity on its own ("warn", 1)
//   - a list whose first element is the severity and the rest are options
//   - a map with a "severity" key and an optional "options" key
func ParseSetting(raw interface{}) (Setting, error) {
	switch val := raw.(type) {
	case Setting:
		return val, nil
	case []interface{}:
		if len(val) == 0 {
			return Setting{}, errors.New(errors.ErrInvalidSeverity, "empty rule setting list")
		}
		sev, err := ParseSeverity(val[0])
		if err != nil {
			return Setting{}, err
		}
		return NewSetting(sev, val[1:]...), nil
	case map[string]interface{}:
		sevRaw, ok := val["severity"]
		if !ok {
			return Setting{}, errors.New(errors.ErrInvalidSeverity, "rule setting map has no severity")
		}
		sev, err := ParseSeverity(sevRaw)
		if err != nil {
			return Setting{}, err
		}
		for key := range val {
			if key != "severity" && key != "options" {
				return Setting{}, errors.Newf(errors.ErrInvalidSeverity,
					"unexpected key %q in rule setting", key).WithDetail("key", key)
			}
		}
		switch opts := val["options"].(type) {
		case nil:
			return NewSetting(sev), nil
		case []interface{}:
			return NewSetting(sev, opts...), nil
		default:
			return NewSetting(sev, opts), nil
		}
	default:
		sev, err := ParseSeverity(raw)
		if err != nil {
			return Setting{}, err
		}
		return NewSetting(sev), nil
	}
}
