// Package terminal provides rich terminal output with colors and tables
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/errors"
	"github.com/arthur-debert/lintlayer/pkg/ui/display"
	"github.com/arthur-debert/lintlayer/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *display.RuleTable:
		return r.ruleTable(v)
	case *display.DescribeResult:
		return r.describe(v)
	case *display.IgnoredResult:
		return r.ignored(v)
	case *display.PolicyList:
		return r.policies(v)
	case *display.CheckResult:
		return r.check(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *Renderer) table(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	return r.println(out)
}

func (r *Renderer) ruleTable(t *display.RuleTable) error {
	header := styles.GetStyle("FilePath").Render(t.Path)
	if t.Ignored {
		header += " " + styles.GetStyle("Ignored").Render("ignored")
	}
	if err := r.println(header); err != nil {
		return err
	}
	if len(t.Rules) == 0 {
		return r.println(styles.GetStyle("NoContent").Render("no rules"))
	}

	data := pterm.TableData{{"Rule", "Severity", "Options", "Source"}}
	for _, row := range t.Rules {
		data = append(data, []string{
			styles.GetStyle("RuleName").Render(row.Name),
			styles.Severity(row.Severity).Render(row.Severity),
			display.FormatOptions(row.Options),
			styles.GetStyle("Source").Render(row.Source),
		})
	}
	return r.table(data)
}

func (r *Renderer) describe(d *display.DescribeResult) error {
	if err := r.ruleTable(&d.RuleTable); err != nil {
		return err
	}
	if d.IgnorePattern != "" {
		msg := "ignored by " + styles.GetStyle("Pattern").Render(d.IgnorePattern)
		if err := r.println(styles.GetStyle("Warning").Render(msg)); err != nil {
			return err
		}
	}
	if len(d.Applied) == 0 && len(d.Excluded) == 0 {
		return r.println(styles.GetStyle("NoContent").Render("no override matched"))
	}

	data := pterm.TableData{{"#", "Override", "Include", "Outcome"}}
	for _, s := range d.Applied {
		data = append(data, []string{
			strconv.Itoa(s.Index),
			s.ID,
			styles.GetStyle("Pattern").Render(s.Include),
			styles.GetStyle("Success").Render("sets " + strings.Join(s.Rules, ", ")),
		})
	}
	for _, s := range d.Excluded {
		data = append(data, []string{
			strconv.Itoa(s.Index),
			s.ID,
			styles.GetStyle("Pattern").Render(s.Include),
			styles.GetStyle("Muted").Render("excluded by " + s.Exclude),
		})
	}
	return r.table(data)
}

func (r *Renderer) ignored(v *display.IgnoredResult) error {
	data := pterm.TableData{{"File", "Status"}}
	for _, f := range v.Files {
		status := styles.GetStyle("Success").Render("linted")
		if f.Ignored {
			status = styles.GetStyle("Ignored").Render("ignored")
		}
		data = append(data, []string{f.Path, status})
	}
	if err := r.println(styles.GetStyle("Muted").Render("environment: " + v.Environment)); err != nil {
		return err
	}
	return r.table(data)
}

func (r *Renderer) policies(v *display.PolicyList) error {
	if len(v.Policies) == 0 {
		return r.println(styles.GetStyle("NoContent").Render("No policies registered"))
	}
	data := pterm.TableData{{"Key", "Import", "Names", "Message"}}
	for _, p := range v.Policies {
		data = append(data, []string{
			styles.GetStyle("Bold").Render(p.Key),
			p.Name,
			strings.Join(p.ImportNames, ", "),
			styles.GetStyle("MutedItalic").Render(p.Message),
		})
	}
	return r.table(data)
}

func (r *Renderer) check(v *display.CheckResult) error {
	if err := r.println(styles.GetStyle("Success").Render("Configuration OK")); err != nil {
		return err
	}
	data := pterm.TableData{
		{"Setting", "Value"},
		{"Sources", strings.Join(v.Sources, "\n")},
		{"Environment", v.Environment},
		{"Base rules", strconv.Itoa(v.BaseRules)},
		{"Overrides", strings.Join(v.Overrides, ", ")},
		{"Policies", strconv.Itoa(v.Policies)},
		{"Ignore patterns", strings.Join(v.IgnorePatterns, ", ")},
	}
	return r.table(data)
}

// RenderError renders an error in the Error style, with its code when known
func (r *Renderer) RenderError(err error) error {
	msg := "Error: " + err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg += " " + styles.GetStyle("Muted").Render("["+string(code)+"]")
	}
	return r.println(styles.GetStyle("Error").Render(msg))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(styles.GetStyle("Info").Render(msg))
}
