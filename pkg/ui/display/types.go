// Package display holds the view models every renderer understands. Command
// code builds them from resolver results; renderers never see resolver types.
package display

import (
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/rules"
)

// RuleRow is one effective rule
type RuleRow struct {
	Name     string        `json:"name" yaml:"name" toml:"name"`
	Severity string        `json:"severity" yaml:"severity" toml:"severity"`
	Options  []interface{} `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Source   string        `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
}

// RuleTable is the output of resolve
type RuleTable struct {
	Path    string    `json:"path" yaml:"path" toml:"path"`
	Ignored bool      `json:"ignored" yaml:"ignored" toml:"ignored"`
	Rules   []RuleRow `json:"rules" yaml:"rules" toml:"rules"`
}

// NewRuleTable builds a table sorted by rule name. sources may be nil.
func NewRuleTable(path string, rs rules.RuleSet, sources map[string]string, ignored bool) *RuleTable {
	t := &RuleTable{
		Path:    path,
		Ignored: ignored,
		Rules:   make([]RuleRow, 0, len(rs)),
	}
	for _, name := range rs.Names() {
		setting := rs[name]
		t.Rules = append(t.Rules, RuleRow{
			Name:     name,
			Severity: setting.Severity.String(),
			Options:  setting.Options,
			Source:   sources[name],
		})
	}
	return t
}

// OverrideStep is an override that matched during describe
type OverrideStep struct {
	Index   int      `json:"index" yaml:"index" toml:"index"`
	ID      string   `json:"id" yaml:"id" toml:"id"`
	Include string   `json:"include" yaml:"include" toml:"include"`
	Exclude string   `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	Rules   []string `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// DescribeResult is the output of describe
type DescribeResult struct {
	RuleTable     `yaml:",inline"`
	IgnorePattern string         `json:"ignorePattern,omitempty" yaml:"ignorePattern,omitempty" toml:"ignorePattern,omitempty"`
	Applied       []OverrideStep `json:"applied" yaml:"applied" toml:"applied"`
	Excluded      []OverrideStep `json:"excluded" yaml:"excluded" toml:"excluded"`
}

// NewDescribeResult converts a resolver trace
func NewDescribeResult(trace *resolver.Trace) *DescribeResult {
	return &DescribeResult{
		RuleTable:     *NewRuleTable(trace.Path, trace.Rules, trace.Sources, trace.Ignored),
		IgnorePattern: trace.IgnorePattern,
		Applied:       convertSteps(trace.Applied),
		Excluded:      convertSteps(trace.Excluded),
	}
}

func convertSteps(steps []resolver.Step) []OverrideStep {
	out := make([]OverrideStep, len(steps))
	for i, s := range steps {
		out[i] = OverrideStep{
			Index:   s.Index,
			ID:      s.ID,
			Include: s.IncludePattern,
			Exclude: s.ExcludePattern,
			Rules:   s.Rules,
		}
	}
	return out
}

// IgnoredFile reports whether one file is ignored
type IgnoredFile struct {
	Path    string `json:"path" yaml:"path" toml:"path"`
	Ignored bool   `json:"ignored" yaml:"ignored" toml:"ignored"`
}

// IgnoredResult is the output of ignored
type IgnoredResult struct {
	Environment string        `json:"environment" yaml:"environment" toml:"environment"`
	Files       []IgnoredFile `json:"files" yaml:"files" toml:"files"`
}

// PolicyRow is one registered policy
type PolicyRow struct {
	Key         string   `json:"key" yaml:"key" toml:"key"`
	Name        string   `json:"name" yaml:"name" toml:"name"`
	ImportNames []string `json:"importNames,omitempty" yaml:"importNames,omitempty" toml:"importNames,omitempty"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
}

// PolicyList is the output of policies
type PolicyList struct {
	Policies []PolicyRow `json:"policies" yaml:"policies" toml:"policies"`
}

// NewPolicyList lists the registry in registration order
func NewPolicyList(r *policy.Registry) *PolicyList {
	keys := r.Keys()
	l := &PolicyList{Policies: make([]PolicyRow, 0, len(keys))}
	for _, key := range keys {
		f, err := r.Lookup(key)
		if err != nil {
			continue
		}
		l.Policies = append(l.Policies, PolicyRow{
			Key:         key,
			Name:        f.Name,
			ImportNames: f.ImportNames,
			Message:     f.Message,
		})
	}
	return l
}

// CheckResult summarises a configuration that loaded cleanly
type CheckResult struct {
	Sources        []string `json:"sources" yaml:"sources" toml:"sources"`
	Environment    string   `json:"environment" yaml:"environment" toml:"environment"`
	BaseRules      int      `json:"baseRules" yaml:"baseRules" toml:"baseRules"`
	Overrides      []string `json:"overrides" yaml:"overrides" toml:"overrides"`
	Policies       int      `json:"policies" yaml:"policies" toml:"policies"`
	IgnorePatterns []string `json:"ignorePatterns" yaml:"ignorePatterns" toml:"ignorePatterns"`
}
