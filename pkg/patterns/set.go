package patterns

import "github.com/arthur-debert/lintlayer/pkg/errors"

// Set is an ordered list of patterns matched with any-of semantics
type Set []*Pattern

// CompileAll compiles every pattern, failing on the first invalid one
func CompileAll(raws []string) (Set, error) {
	set := make(Set, 0, len(raws))
	for i, raw := range raws {
		p, err := Compile(raw)
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.WithDetail("index", i)
			}
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Match returns the first pattern matching file
func (s Set) Match(file string) (*Pattern, bool) {
	for _, p := range s {
		if p.Match(file) {
			return p, true
		}
	}
	return nil, false
}

// MatchAny reports whether any pattern matches file
func (s Set) MatchAny(file string) bool {
	_, ok := s.Match(file)
	return ok
}

// Strings returns the patterns as written
func (s Set) Strings() []string {
	out := make([]string, len(s))
	for i, p := range s {
		out[i] = p.String()
	}
	return out
}
