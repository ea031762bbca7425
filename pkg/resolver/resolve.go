package resolver

import (
	"github.com/arthur-debert/lintlayer/pkg/patterns"
	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/rules"
)

// Resolve returns the effective rule set for file, a relative path with
// forward slashes. The result is a deep copy owned by the caller.
func (r *Resolver) Resolve(file string) (rules.RuleSet, error) {
	if err := patterns.ValidatePath(file); err != nil {
		return nil, err
	}

	effective := r.base.Clone()
	for i := range r.blocks {
		b := &r.blocks[i]
		if _, _, applies := b.matches(file); applies {
			effective.Apply(b.rules)
		}
	}

	r.logger.Debug().
		Str("path", file).
		Int("rules", len(effective)).
		Msg("Resolved configuration")

	return effective.Clone(), nil
}

// Describe resolves file and records which overrides contributed
func (r *Resolver) Describe(file string) (*Trace, error) {
	if err := patterns.ValidatePath(file); err != nil {
		return nil, err
	}

	trace := &Trace{
		Path:     file,
		Applied:  []Step{},
		Excluded: []Step{},
		Sources:  make(map[string]string, len(r.base)),
	}
	if p, ok := r.ignore.Match(file); ok {
		trace.Ignored = true
		trace.IgnorePattern = p.String()
	}

	effective := r.base.Clone()
	for name := range r.base {
		trace.Sources[name] = BaseSource
	}

	for i := range r.blocks {
		b := &r.blocks[i]
		include, exclude, applies := b.matches(file)
		if include == nil {
			continue
		}
		step := Step{
			Index:          b.index,
			ID:             b.id,
			IncludePattern: include.String(),
		}
		if !applies {
			step.ExcludePattern = exclude.String()
			trace.Excluded = append(trace.Excluded, step)
			continue
		}
		step.Rules = b.rules.Names()
		trace.Applied = append(trace.Applied, step)
		effective.Apply(b.rules)
		for name := range b.rules {
			trace.Sources[name] = b.id
		}
	}

	trace.Rules = effective.Clone()

	r.logger.Debug().
		Str("path", file).
		Strs("applied", trace.AppliedIDs()).
		Int("excluded", len(trace.Excluded)).
		Bool("ignored", trace.Ignored).
		Msg("Described configuration")

	return trace, nil
}

// IsIgnored reports whether file matches one of the ignore patterns
func (r *Resolver) IsIgnored(file string) (bool, error) {
	if err := patterns.ValidatePath(file); err != nil {
		return false, err
	}
	return r.ignore.MatchAny(file), nil
}

// Base returns a copy of the base rule set with references expanded
func (r *Resolver) Base() rules.RuleSet {
	return r.base.Clone()
}

// Policies returns the sealed registry the resolver was loaded with
func (r *Resolver) Policies() *policy.Registry {
	return r.registry
}

// OverrideIDs lists the override ids in declaration order
func (r *Resolver) OverrideIDs() []string {
	ids := make([]string, len(r.blocks))
	for i, b := range r.blocks {
		ids[i] = b.id
	}
	return ids
}

// IgnorePatterns returns the ignore patterns in declaration order
func (r *Resolver) IgnorePatterns() []string {
	return r.ignore.Strings()
}

// matches returns the first include pattern matching file, the first exclude
// pattern matching file, and whether the block applies.
func (b *block) matches(file string) (include, exclude *patterns.Pattern, applies bool) {
	include, ok := b.include.Match(file)
	if !ok {
		return nil, nil, false
	}
	if exclude, vetoed := b.exclude.Match(file); vetoed {
		return include, exclude, false
	}
	return include, nil, true
}
