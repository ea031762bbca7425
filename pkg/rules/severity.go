package rules

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// Severity is the reporting level of a rule
type Severity int

const (
	Off Severity = iota
	Warn
	Error
)

var severityNames = [...]string{"off", "warn", "error"}

// String returns the canonical lower-case name
func (s Severity) String() string {
	if s < Off || s > Error {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// IsValid reports whether s is one of Off, Warn or Error
func (s Severity) IsValid() bool {
	return s >= Off && s <= Error
}

// MarshalText encodes the severity by name so JSON, YAML and TOML output stay readable
func (s Severity) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, errors.Newf(errors.ErrInvalidSeverity, "invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText accepts the same spellings as ParseSeverity
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a raw configuration value into a Severity.
// Strings may be a name ("off", "warn", "error", any case) or a digit;
// numbers must be integral and in the range 0..2.
func ParseSeverity(v interface{}) (Severity, error) {
	switch val := v.(type) {
	case Severity:
		if val.IsValid() {
			return val, nil
		}
	case string:
		name := strings.ToLower(strings.TrimSpace(val))
		for i, n := range severityNames {
			if name == n {
				return Severity(i), nil
			}
		}
		if n, err := strconv.Atoi(name); err == nil {
			return ParseSeverity(n)
		}
	case int:
		return severityFromInt(int64(val), v)
	case int8:
		return severityFromInt(int64(val), v)
	case int16:
		return severityFromInt(int64(val), v)
	case int32:
		return severityFromInt(int64(val), v)
	case int64:
		return severityFromInt(val, v)
	case uint:
		return severityFromInt(int64(val), v)
	case uint8:
		return severityFromInt(int64(val), v)
	case uint16:
		return severityFromInt(int64(val), v)
	case uint32:
		return severityFromInt(int64(val), v)
	case uint64:
		if val <= math.MaxInt64 {
			return severityFromInt(int64(val), v)
		}
	case float32:
		return severityFromFloat(float64(val), v)
	case float64:
		return severityFromFloat(val, v)
	}
	return Off, invalidSeverity(v)
}

func severityFromInt(n int64, raw interface{}) (Severity, error) {
	if n < int64(Off) || n > int64(Error) {
		return Off, invalidSeverity(raw)
	}
	return Severity(n), nil
}

func severityFromFloat(f float64, raw interface{}) (Severity, error) {
	if f != math.Trunc(f) {
		return Off, invalidSeverity(raw)
	}
	return severityFromInt(int64(f), raw)
}

func invalidSeverity(raw interface{}) error {
	return errors.Newf(errors.ErrInvalidSeverity,
		"invalid severity %v: expected off, warn, error or 0-2", raw).
		WithDetail("value", raw)
}
