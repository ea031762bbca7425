package display

import (
	"testing"

	"github.com/arthur-debert/lintlayer/pkg/policy"
	"github.com/arthur-debert/lintlayer/pkg/resolver"
	"github.com/arthur-debert/lintlayer/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleTableSortsByName(t *testing.T) {
	rs := rules.RuleSet{
		"no-console": rules.NewSetting(rules.Warn),
		"eqeqeq":     rules.NewSetting(rules.Error, "smart"),
		"max-lines":  rules.NewSetting(rules.Off),
	}
	table := NewRuleTable("src/app.ts", rs, map[string]string{"eqeqeq": "base"}, false)

	require.Len(t, table.Rules, 3)
	assert.Equal(t, RuleRow{Name: "eqeqeq", Severity: "error", Options: []interface{}{"smart"}, Source: "base"}, table.Rules[0])
	assert.Equal(t, "max-lines", table.Rules[1].Name)
	assert.Equal(t, "off", table.Rules[1].Severity)
	assert.Equal(t, "no-console", table.Rules[2].Name)
	assert.Empty(t, table.Rules[2].Source)
}

func TestNewDescribeResult(t *testing.T) {
	r, err := resolver.Load(
		rules.RuleSet{"no-console": rules.NewSetting(rules.Warn)},
		[]resolver.Override{
			{Name: "tests", Files: []string{"*.test.ts"}, ExcludedFiles: []string{"e2e/**"}, Rules: rules.RuleSet{"no-console": rules.NewSetting(rules.Off)}},
			{Name: "src", Files: []string{"**/*.ts"}, Rules: rules.RuleSet{"max-lines": rules.NewSetting(rules.Error)}},
		}, nil)
	require.NoError(t, err)

	trace, err := r.Describe("e2e/login.test.ts")
	require.NoError(t, err)

	result := NewDescribeResult(trace)
	assert.Equal(t, "e2e/login.test.ts", result.Path)
	assert.Equal(t, []OverrideStep{{Index: 0, ID: "tests", Include: "*.test.ts", Exclude: "e2e/**"}}, result.Excluded)
	assert.Equal(t, []OverrideStep{{Index: 1, ID: "src", Include: "**/*.ts", Rules: []string{"max-lines"}}}, result.Applied)
	assert.Equal(t, "base", result.Rules[1].Source)
	assert.Equal(t, "src", result.Rules[0].Source)
}

func TestNewPolicyList(t *testing.T) {
	r := policy.NewRegistry()
	require.NoError(t, r.Register("no-moment", policy.Fragment{Name: "moment", Message: "use dayjs"}))
	require.NoError(t, r.Register("no-theme", policy.Fragment{Name: "@superset-ui/core", ImportNames: []string{"supersetTheme"}}))

	list := NewPolicyList(r)
	assert.Equal(t, []PolicyRow{
		{Key: "no-moment", Name: "moment", Message: "use dayjs"},
		{Key: "no-theme", Name: "@superset-ui/core", ImportNames: []string{"supersetTheme"}},
	}, list.Policies)
}

func TestFormatOptions(t *testing.T) {
	assert.Equal(t, "", FormatOptions(nil))
	assert.Equal(t, `["smart"]`, FormatOptions([]interface{}{"smart"}))
	assert.Equal(t,
		`[{"paths":[{"name":"moment","message":"use dayjs"}]}]`,
		FormatOptions([]interface{}{map[string]interface{}{
			"paths": []interface{}{policy.Fragment{Name: "moment", Message: "use dayjs"}},
		}}))
}
