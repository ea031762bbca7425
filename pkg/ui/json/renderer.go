// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/lintlayer/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult renders any result type as JSON
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON, with its code and details when it
// carries them
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]interface{}{
		"error": err.Error(),
	}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		errorObj["code"] = code
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		errorObj["details"] = details
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
