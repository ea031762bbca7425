package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
