package patterns

import (
	"testing"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		file    string
		want    bool
	}{
		// base name patterns match at any depth
		{"*.test.ts", "src/foo/bar.test.ts", true},
		{"*.test.ts", "bar.test.ts", true},
		{"*.test.ts", "src/bar.test.tsx", false},
		{"fixtures.*", "spec/fixtures.json", true},
		{"Stories.tsx", "src/Stories.tsx", true},

		// path patterns are anchored at the root
		{"src/**", "src/app.ts", true},
		{"src/**", "src/a/b/c.ts", true},
		{"src/**", "lib/src/app.ts", false},
		{"src/*", "src/app.ts", true},
		{"src/*", "src/a/app.ts", false},
		{"packages/**", "packages/x/y.ts", true},

		// globstar stands for zero or more whole segments
		{"plugins/**/test/**/*", "plugins/a/test/b/c.ts", true},
		{"plugins/**/test/**/*", "plugins/test/c.ts", true},
		{"plugins/**/test/**/*", "plugins/a/b/test/c.ts", true},
		{"plugins/**/test/**/*", "plugins/a/spec/c.ts", false},
		{"**/config/*", "config/a.json", true},
		{"**/config/*", "deep/nested/config/a.json", true},
		{"cypress-base/cypress/**/*", "cypress-base/cypress/e2e/a.test.ts", true},

		// single character wildcard never crosses a separator
		{"src/?.ts", "src/a.ts", true},
		{"src/?.ts", "src/ab.ts", false},
		{"a?b", "a/b", false},

		// anchoring and case
		{"src/app.ts", "src/app.ts", true},
		{"src/app", "src/app.ts", false},
		{"*.TS", "src/app.ts", false},

		// root anchored patterns
		{"/README.md", "README.md", true},
		{"/README.md", "docs/README.md", false},
		{"./src/*.ts", "src/app.ts", true},

		// extensions: braces and classes
		{"*.test.{js,ts,jsx,tsx}", "src/a.test.jsx", true},
		{"*.test.{js,ts,jsx,tsx}", "src/a.test.mjs", false},
		{"file[0-9].ts", "src/file3.ts", true},
		{"file[!0-9].ts", "src/file3.ts", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.file, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Match(tt.file))
		})
	}
}

func TestCompileInvalid(t *testing.T) {
	for _, raw := range []string{"", "/", "./", "src/[a-"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Compile(raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPattern))
			assert.Equal(t, raw, errors.GetErrorDetails(err)["pattern"])
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("") })
	assert.NotPanics(t, func() { MustCompile("*.ts") })
}

func TestMatchesBasename(t *testing.T) {
	assert.True(t, MustCompile("*.ts").MatchesBasename())
	assert.False(t, MustCompile("src/*.ts").MatchesBasename())
	assert.False(t, MustCompile("/package.json").MatchesBasename())
	assert.Equal(t, "/package.json", MustCompile("/package.json").String())
}

func TestGlobstarVariants(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"src/*.ts", []string{"src/*.ts"}},
		{"src/**", []string{"src/**"}},
		{"**/a", []string{"**/a", "a"}},
		{"a/**/b", []string{"a/**/b", "a/b"}},
		{"a/**/b/**/c", []string{"a/**/b/**/c", "a/**/b/c", "a/b/**/c", "a/b/c"}},
		{"{a/**/b,c}", []string{"{a/**/b,c}"}},
		{"a**/b", []string{"a**/b"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, globstarVariants(tt.expr))
		})
	}
}
