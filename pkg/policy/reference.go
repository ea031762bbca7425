package policy

import (
	"slices"
	"sort"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// Keys recognised in raw configuration maps
const (
	RefKey       = "$policy"
	SelectionKey = "$policies"
	ExceptKey    = "$except"
)

// Ref points at a single registered fragment
type Ref struct {
	Key string
}

// Selection points at several fragments. With All set every registered key
// is selected in registration order; otherwise Keys in the given order.
// Except removes keys from either form.
type Selection struct {
	All    bool
	Keys   []string
	Except []string
}

func (s Selection) references() []string {
	out := make([]string, 0, len(s.Keys)+len(s.Except))
	out = append(out, s.Keys...)
	return append(out, s.Except...)
}

// References lists every key referenced anywhere inside v, in encounter order
func References(v interface{}) []string {
	var keys []string
	walk(v, func(node interface{}) {
		switch ref := node.(type) {
		case Ref:
			keys = append(keys, ref.Key)
		case Selection:
			keys = append(keys, ref.references()...)
		}
	})
	return keys
}

func walk(v interface{}, visit func(interface{})) {
	visit(v)
	switch val := v.(type) {
	case []interface{}:
		for _, item := range val {
			walk(item, visit)
		}
	case map[string]interface{}:
		for _, key := range sortedKeys(val) {
			walk(val[key], visit)
		}
	}
}

// Expand returns a copy of v with every reference replaced by registry values.
// Ref becomes a Fragment, Selection becomes a []interface{} of Fragments.
func Expand(v interface{}, r *Registry) (interface{}, error) {
	switch val := v.(type) {
	case Ref:
		fragment, err := r.Lookup(val.Key)
		if err != nil {
			return nil, err
		}
		return fragment, nil
	case Selection:
		return expandSelection(val, r)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			expanded, err := Expand(item, r)
			if err != nil {
				return nil, err
			}
			out[i] = expanded
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for _, key := range sortedKeys(val) {
			expanded, err := Expand(val[key], r)
			if err != nil {
				return nil, err
			}
			out[key] = expanded
		}
		return out, nil
	default:
		return v, nil
	}
}

func expandSelection(s Selection, r *Registry) ([]interface{}, error) {
	for _, key := range s.Except {
		if !r.Has(key) {
			return nil, unknownKey(key)
		}
	}

	keys := s.Keys
	if s.All {
		keys = r.Keys()
	}

	out := make([]interface{}, 0, len(keys))
	for _, key := range keys {
		if slices.Contains(s.Except, key) {
			continue
		}
		fragment, err := r.Lookup(key)
		if err != nil {
			return nil, err
		}
		out = append(out, fragment)
	}
	return out, nil
}

// Decode walks a raw configuration value and turns reference maps into Ref
// and Selection values. Other values are returned as new containers with the
// same content.
func Decode(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			decoded, err := Decode(item)
			if err != nil {
				return nil, err
			}
			out[i] = decoded
		}
		return out, nil
	case map[string]interface{}:
		if ref, ok, err := decodeReference(val); ok || err != nil {
			return ref, err
		}
		out := make(map[string]interface{}, len(val))
		for _, key := range sortedKeys(val) {
			decoded, err := Decode(val[key])
			if err != nil {
				return nil, err
			}
			out[key] = decoded
		}
		return out, nil
	default:
		return v, nil
	}
}

func decodeReference(m map[string]interface{}) (interface{}, bool, error) {
	if key, ok := m[RefKey]; ok {
		if len(m) != 1 {
			return nil, true, malformed("%s must be the only key in its map", RefKey)
		}
		s, ok := key.(string)
		if !ok || s == "" {
			return nil, true, malformed("%s must be a non-empty string, got %v", RefKey, key)
		}
		return Ref{Key: s}, true, nil
	}

	selected, ok := m[SelectionKey]
	if !ok {
		if _, hasExcept := m[ExceptKey]; hasExcept {
			return nil, true, malformed("%s requires %s", ExceptKey, SelectionKey)
		}
		return nil, false, nil
	}
	for key := range m {
		if key != SelectionKey && key != ExceptKey {
			return nil, true, malformed("unexpected key %q next to %s", key, SelectionKey)
		}
	}

	var sel Selection
	switch val := selected.(type) {
	case string:
		if val != "*" {
			return nil, true, malformed(`%s must be "*" or a list of keys, got %q`, SelectionKey, val)
		}
		sel.All = true
	default:
		keys, err := stringList(selected, SelectionKey)
		if err != nil {
			return nil, true, err
		}
		sel.Keys = keys
	}

	if except, ok := m[ExceptKey]; ok {
		keys, err := stringList(except, ExceptKey)
		if err != nil {
			return nil, true, err
		}
		sel.Except = keys
	}
	return sel, true, nil
}

func stringList(v interface{}, field string) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return slices.Clone(val), nil
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, malformed("%s entries must be non-empty strings, got %v", field, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, malformed("%s must be a list of keys, got %T", field, v)
	}
}

func malformed(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigInvalid, "malformed policy reference: "+format, args...)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
