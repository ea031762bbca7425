package patterns

import (
	"path"
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/gobwas/glob"
)

const separator = '/'

// Pattern is a compiled file glob
type Pattern struct {
	raw      string
	basename bool
	globs    []glob.Glob
}

// Compile parses a glob pattern
func Compile(raw string) (*Pattern, error) {
	expr := raw
	anchored := false
	for strings.HasPrefix(expr, "./") {
		expr = expr[2:]
		anchored = true
	}
	if strings.HasPrefix(expr, "/") {
		expr = strings.TrimLeft(expr, "/")
		anchored = true
	}
	if expr == "" {
		return nil, errors.Newf(errors.ErrInvalidPattern, "empty pattern %q", raw).
			WithDetail("pattern", raw)
	}

	p := &Pattern{
		raw:      raw,
		basename: !anchored && !strings.ContainsRune(expr, separator),
	}
	for _, variant := range globstarVariants(expr) {
		g, err := glob.Compile(variant, separator)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPattern, "invalid pattern %q", raw).
				WithDetail("pattern", raw)
		}
		p.globs = append(p.globs, g)
	}
	return p, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(raw string) *Pattern {
	p, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether the normalized relative file path matches
func (p *Pattern) Match(file string) bool {
	target := file
	if p.basename {
		target = path.Base(file)
	}
	for _, g := range p.globs {
		if g.Match(target) {
			return true
		}
	}
	return false
}

// MatchesBasename reports whether the pattern is evaluated against base names only
func (p *Pattern) MatchesBasename() bool {
	return p.basename
}

// String returns the pattern as written
func (p *Pattern) String() string {
	return p.raw
}

// globstarVariants expands every whole-segment `**/` into the pattern with
// and without it, so the globstar can stand for zero segments. Occurrences
// inside brace alternatives are left alone.
func globstarVariants(expr string) []string {
	var cuts []int
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '*':
			if depth == 0 && strings.HasPrefix(expr[i:], "**/") && (i == 0 || expr[i-1] == separator) {
				cuts = append(cuts, i)
				i += 2
			}
		}
	}

	variants := []string{expr}
	// later cuts first, so earlier offsets stay valid in every variant
	for j := len(cuts) - 1; j >= 0; j-- {
		c := cuts[j]
		n := len(variants)
		for k := 0; k < n; k++ {
			v := variants[k]
			variants = append(variants, v[:c]+v[c+3:])
		}
	}
	return variants
}
