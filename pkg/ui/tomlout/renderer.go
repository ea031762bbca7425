// Package tomlout renders results as TOML documents
package tomlout

import (
	"io"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Renderer writes one TOML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := toml.NewEncoder(r.output)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}

// RenderResult renders any result type as TOML. TOML documents are tables,
// so results must be structs or maps.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	out := map[string]interface{}{"error": err.Error()}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		out["code"] = string(code)
	}
	return r.encode(out)
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
