package policy

import (
	"testing"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Register("no-moment", noMoment))
	require.NoError(t, r.Register("no-antd", noAntd))
	require.NoError(t, r.Register("no-superset-theme", noTheme))
	return r
}

func TestDecode(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"paths":    map[string]interface{}{"$policies": "*", "$except": []interface{}{"no-antd"}},
			"patterns": []interface{}{"antd/*"},
		},
		map[string]interface{}{"$policy": "no-moment"},
		map[string]interface{}{"$policies": []interface{}{"no-moment", "no-antd"}},
		"plain",
	}

	got, err := Decode(raw)
	require.NoError(t, err)

	want := []interface{}{
		map[string]interface{}{
			"paths":    Selection{All: true, Except: []string{"no-antd"}},
			"patterns": []interface{}{"antd/*"},
		},
		Ref{Key: "no-moment"},
		Selection{Keys: []string{"no-moment", "no-antd"}},
		"plain",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"ref with sibling", map[string]interface{}{"$policy": "no-moment", "extra": 1}},
		{"ref not a string", map[string]interface{}{"$policy": 3}},
		{"selection bad string", map[string]interface{}{"$policies": "some"}},
		{"selection bad entry", map[string]interface{}{"$policies": []interface{}{"ok", 4}}},
		{"except without selection", map[string]interface{}{"$except": []interface{}{"no-antd"}}},
		{"selection with sibling", map[string]interface{}{"$policies": "*", "name": "x"}},
		{"except not a list", map[string]interface{}{"$policies": "*", "$except": "no-antd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]interface{}{tt.raw})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		})
	}
}

func TestReferences(t *testing.T) {
	payload := []interface{}{
		map[string]interface{}{
			"paths": Selection{All: true, Except: []string{"no-antd"}},
		},
		Ref{Key: "no-query-string"},
		Selection{Keys: []string{"no-moment"}},
	}

	assert.Equal(t, []string{"no-antd", "no-query-string", "no-moment"}, References(payload))
	assert.Empty(t, References([]interface{}{"single", 2}))
}

func TestExpand(t *testing.T) {
	r := newTestRegistry(t)
	payload := []interface{}{
		map[string]interface{}{
			"paths":    Selection{All: true, Except: []string{"no-antd"}},
			"patterns": []interface{}{"antd/*"},
		},
		Ref{Key: "no-antd"},
		Selection{Keys: []string{"no-superset-theme", "no-moment"}},
	}

	got, err := Expand(payload, r)
	require.NoError(t, err)

	want := []interface{}{
		map[string]interface{}{
			"paths":    []interface{}{noMoment, noTheme},
			"patterns": []interface{}{"antd/*"},
		},
		noAntd,
		[]interface{}{noTheme, noMoment},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand() mismatch (-want +got):\n%s", diff)
	}

	// input is untouched
	assert.Equal(t, Ref{Key: "no-antd"}, payload[1])
}

func TestExpandTwiceYieldsEqualFragments(t *testing.T) {
	r := newTestRegistry(t)

	a, err := Expand(Ref{Key: "no-moment"}, r)
	require.NoError(t, err)
	b, err := Expand(Ref{Key: "no-moment"}, r)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestExpandUnknown(t *testing.T) {
	r := newTestRegistry(t)

	for _, payload := range []interface{}{
		Ref{Key: "no-lodash-memoize"},
		Selection{Keys: []string{"no-lodash-memoize"}},
		Selection{All: true, Except: []string{"no-lodash-memoize"}},
	} {
		_, err := Expand([]interface{}{payload}, r)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownPolicyReference))
		assert.Equal(t, "no-lodash-memoize", errors.GetErrorDetails(err)["key"])
	}
}
