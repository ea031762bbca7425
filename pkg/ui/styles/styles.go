// Package styles defines the visual styling of lintlayer's terminal output.
//
// Styles have semantic names and adaptive colors that adjust to light and
// dark terminal themes. The defaults are embedded; a styles.yaml in the user
// configuration directory replaces them.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	MarginLeft   int    `yaml:"marginLeft,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	MarginTop    int    `yaml:"marginTop,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles keeps every known name resolvable when the embedded
// styles cannot be parsed
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = make(map[string]lipgloss.Style)

	defaultStyle := lipgloss.NewStyle()
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Bold", "Muted", "FilePath", "RuleName", "Source",
	} {
		StyleRegistry[name] = defaultStyle
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData loads style configuration from byte data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor)
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	StyleRegistry = make(map[string]lipgloss.Style)
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}

	return nil
}

func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}

	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Severity returns the style for a severity name
func Severity(name string) lipgloss.Style {
	switch name {
	case "warn":
		return GetStyle("SeverityWarn")
	case "error":
		return GetStyle("SeverityError")
	default:
		return GetStyle("SeverityOff")
	}
}
