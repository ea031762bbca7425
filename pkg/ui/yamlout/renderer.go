// Package yamlout renders results as YAML documents
package yamlout

import (
	"io"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Renderer writes one YAML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderResult renders any result type as YAML
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	out := map[string]interface{}{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		out["code"] = string(code)
	}
	return r.encode(out)
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
