package resolver

import (
	"strconv"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/logging"
	"github.com/arthur-debert/lintlayer/pkg/patterns"
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/rules"
	"github.com/rs/zerolog"
)

// Resolver computes effective rule sets. It is safe for concurrent use.
type Resolver struct {
	base     rules.RuleSet
	blocks   []block
	ignore   patterns.Set
	registry *policy.Registry
	logger   zerolog.Logger
}

// Load validates the configuration and builds an immutable Resolver.
// The registry is sealed on success. On failure no Resolver is returned.
func Load(base rules.RuleSet, overrides []Override, registry *policy.Registry) (*Resolver, error) {
	return LoadWithOptions(base, overrides, registry, Options{})
}

// LoadWithOptions is Load with extra construction options
func LoadWithOptions(base rules.RuleSet, overrides []Override, registry *policy.Registry, opts Options) (*Resolver, error) {
	logger := logging.GetLogger("resolver")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	if registry == nil {
		registry = policy.NewRegistry()
	}

	resolvedBase, err := expandRuleSet(base, registry, -1)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(overrides))
	blocks := make([]block, 0, len(overrides))
	for i, o := range overrides {
		b, err := compileOverride(i, o, registry)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[b.id]; dup {
			return nil, errors.Newf(errors.ErrInvalidOverride,
				"override %d reuses the name %q of override %d", i, b.id, prev).
				WithDetail("override", i).
				WithDetail("name", b.id)
		}
		seen[b.id] = i
		blocks = append(blocks, b)
	}

	ignore, err := patterns.CompileAll(opts.IgnorePatterns)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidPattern, "invalid ignore pattern")
	}

	registry.Seal()

	logger.Info().
		Int("baseRules", len(resolvedBase)).
		Int("overrides", len(blocks)).
		Int("policies", registry.Len()).
		Int("ignorePatterns", len(ignore)).
		Msg("Configuration loaded")

	return &Resolver{
		base:     resolvedBase,
		blocks:   blocks,
		ignore:   ignore,
		registry: registry,
		logger:   logger,
	}, nil
}

func compileOverride(index int, o Override, registry *policy.Registry) (block, error) {
	id := blockID(index, o.Name)

	if len(o.Files) == 0 {
		return block{}, errors.Newf(errors.ErrInvalidOverride,
			"override %d (%s) has no include patterns", index, id).
			WithDetail("override", index)
	}

	include, err := patterns.CompileAll(o.Files)
	if err != nil {
		return block{}, errors.Wrapf(err, errors.ErrInvalidOverride,
			"override %d (%s) has an invalid include pattern", index, id).
			WithDetail("override", index)
	}
	exclude, err := patterns.CompileAll(o.ExcludedFiles)
	if err != nil {
		return block{}, errors.Wrapf(err, errors.ErrInvalidOverride,
			"override %d (%s) has an invalid exclude pattern", index, id).
			WithDetail("override", index)
	}

	delta, err := expandRuleSet(o.Rules, registry, index)
	if err != nil {
		return block{}, err
	}

	return block{
		index:   index,
		id:      id,
		include: include,
		exclude: exclude,
		rules:   delta,
	}, nil
}

// expandRuleSet deep-copies rs, checks rule names and substitutes every
// policy reference. index is the override position, -1 for the base.
func expandRuleSet(rs rules.RuleSet, registry *policy.Registry, index int) (rules.RuleSet, error) {
	out := make(rules.RuleSet, len(rs))
	for _, name := range rs.Names() {
		setting := rs[name]
		if name == "" {
			return nil, errors.Newf(errors.ErrInvalidOverride, "%s declares a rule with an empty name", where(index)).
				WithDetail("override", index)
		}
		if !setting.Severity.IsValid() {
			return nil, errors.Newf(errors.ErrInvalidSeverity, "%s: rule %q has invalid severity %d",
				where(index), name, int(setting.Severity)).
				WithDetail("override", index).
				WithDetail("rule", name)
		}

		for _, key := range policy.References(setting.Options) {
			if !registry.Has(key) {
				return nil, errors.Newf(errors.ErrUnknownPolicyReference,
					"%s: rule %q references unknown policy %q", where(index), name, key).
					WithDetail("key", key).
					WithDetail("override", index).
					WithDetail("rule", name)
			}
		}

		if len(setting.Options) == 0 {
			out[name] = rules.NewSetting(setting.Severity)
			continue
		}
		expanded, err := policy.Expand(setting.Options, registry)
		if err != nil {
			return nil, err
		}
		out[name] = rules.NewSetting(setting.Severity, expanded.([]interface{})...).Clone()
	}
	return out, nil
}

func where(index int) string {
	if index < 0 {
		return "base configuration"
	}
	return "override " + strconv.Itoa(index)
}
