package policy

import "slices"

// Fragment describes a forbidden import and the message shown when it is used
type Fragment struct {
	Name        string   `json:"name" yaml:"name" toml:"name" koanf:"name"`
	ImportNames []string `json:"importNames,omitempty" yaml:"importNames,omitempty" toml:"importNames,omitempty" koanf:"import_names"`
	Message     string   `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty" koanf:"message"`
}

// Equal compares fragments field by field
func (f Fragment) Equal(other Fragment) bool {
	return f.Name == other.Name &&
		f.Message == other.Message &&
		slices.Equal(f.ImportNames, other.ImportNames)
}

func (f Fragment) clone() Fragment {
	f.ImportNames = slices.Clone(f.ImportNames)
	return f
}
