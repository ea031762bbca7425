package resolver

import (
	"fmt"

	"github.com/arthur-debert/lintlayer/pkg/patterns"
	"github.com/arthur-debert/lintlayer/pkg/rules"
)

// BaseSource identifies the base configuration in traces
const BaseSource = "base"

// Override is a scoped set of rule changes
type Override struct {
	// Name identifies the override in traces; defaults to overrides[<index>]
	Name string
	// Files are the include patterns; at least one is required
	Files []string
	// ExcludedFiles veto the override even when an include pattern matched
	ExcludedFiles []string
	// Rules replace the settings of the named rules
	Rules rules.RuleSet
}

// Options tunes resolver construction
type Options struct {
	// IgnorePatterns name files the host should not lint at all. The caller
	// decides which patterns apply (for example per environment).
	IgnorePatterns []string
}

// block is a validated, compiled override
type block struct {
	index   int
	id      string
	include patterns.Set
	exclude patterns.Set
	rules   rules.RuleSet
}

func blockID(index int, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("overrides[%d]", index)
}

// Step records one override that matched a file
type Step struct {
	Index          int      `json:"index" yaml:"index" toml:"index"`
	ID             string   `json:"id" yaml:"id" toml:"id"`
	IncludePattern string   `json:"include" yaml:"include" toml:"include"`
	ExcludePattern string   `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	Rules          []string `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// Trace explains how the effective configuration of a file came to be
type Trace struct {
	Path string `json:"path" yaml:"path" toml:"path"`
	// Ignored is set when the file matches an ignore pattern
	Ignored       bool   `json:"ignored" yaml:"ignored" toml:"ignored"`
	IgnorePattern string `json:"ignorePattern,omitempty" yaml:"ignorePattern,omitempty" toml:"ignorePattern,omitempty"`
	// Applied lists the overrides that contributed, in order
	Applied []Step `json:"applied" yaml:"applied" toml:"applied"`
	// Excluded lists overrides whose include matched but an exclude vetoed
	Excluded []Step `json:"excluded" yaml:"excluded" toml:"excluded"`
	// Sources maps each effective rule to "base" or the id of the last override setting it
	Sources map[string]string `json:"sources" yaml:"sources" toml:"sources"`
	Rules   rules.RuleSet     `json:"rules" yaml:"rules" toml:"rules"`
}

// AppliedIDs returns the ids of the contributing overrides in order
func (t *Trace) AppliedIDs() []string {
	ids := make([]string, len(t.Applied))
	for i, step := range t.Applied {
		ids[i] = step.ID
	}
	return ids
}
