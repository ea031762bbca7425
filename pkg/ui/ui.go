// Package ui renders command results as styled terminal tables, plain text,
// JSON, YAML or TOML.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/lintlayer/pkg/ui/json"
	"github.com/arthur-debert/lintlayer/pkg/ui/terminal"
	"github.com/arthur-debert/lintlayer/pkg/ui/text"
	"github.com/arthur-debert/lintlayer/pkg/ui/tomlout"
	"github.com/arthur-debert/lintlayer/pkg/ui/yamlout"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders one of the display view models
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yamlout.New(output)
	case FormatTOML:
		return tomlout.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
