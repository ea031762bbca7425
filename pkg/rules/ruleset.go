package rules

import "sort"

// RuleSet maps rule names to their settings
type RuleSet map[string]Setting

// Clone returns a deep copy of the rule set
func (rs RuleSet) Clone() RuleSet {
	out := make(RuleSet, len(rs))
	for name, setting := range rs {
		out[name] = setting.Clone()
	}
	return out
}

// Names returns the rule names in sorted order
func (rs RuleSet) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply replaces every rule named in delta. Settings are replaced whole,
// option payloads are never merged.
func (rs RuleSet) Apply(delta RuleSet) {
	for name, setting := range delta {
		rs[name] = setting
	}
}

// Equal reports whether both rule sets hold the same names with equal settings
func (rs RuleSet) Equal(other RuleSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for name, setting := range rs {
		o, ok := other[name]
		if !ok || !setting.Equal(o) {
			return false
		}
	}
	return true
}

// Parse converts a raw name -> value map into a RuleSet
func Parse(raw map[string]interface{}) (RuleSet, error) {
	out := make(RuleSet, len(raw))
	for _, name := range sortedKeys(raw) {
		setting, err := ParseSetting(raw[name])
		if err != nil {
			return nil, withRule(err, name)
		}
		out[name] = setting
	}
	return out, nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
