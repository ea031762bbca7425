package config

import (
	_ "embed"
	"errors"
)

//go:embed embedded/defaults.toml
var defaultSettings []byte

//go:embed embedded/example.toml
var exampleConfig []byte

// ExampleContent returns the annotated example configuration
func ExampleContent() string {
	return string(exampleConfig)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
