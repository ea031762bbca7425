// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/lintlayer/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	w := &errWriter{w: r.output}
	switch v := result.(type) {
	case *display.RuleTable:
		r.ruleTable(w, v)
	case *display.DescribeResult:
		r.describe(w, v)
	case *display.IgnoredResult:
		for _, f := range v.Files {
			state := "linted"
			if f.Ignored {
				state = "ignored"
			}
			w.printf("%s\t%s\n", f.Path, state)
		}
	case *display.PolicyList:
		if len(v.Policies) == 0 {
			w.printf("No policies registered\n")
		}
		for _, p := range v.Policies {
			w.printf("%s\t%s", p.Key, p.Name)
			if len(p.ImportNames) > 0 {
				w.printf(" (%s)", strings.Join(p.ImportNames, ", "))
			}
			if p.Message != "" {
				w.printf("\t%s", p.Message)
			}
			w.printf("\n")
		}
	case *display.CheckResult:
		w.printf("Configuration OK\n")
		w.printf("sources: %s\n", strings.Join(v.Sources, ", "))
		w.printf("environment: %s\n", v.Environment)
		w.printf("base rules: %d\n", v.BaseRules)
		w.printf("overrides: %d", len(v.Overrides))
		if len(v.Overrides) > 0 {
			w.printf(" (%s)", strings.Join(v.Overrides, ", "))
		}
		w.printf("\npolicies: %d\n", v.Policies)
		w.printf("ignore patterns: %d\n", len(v.IgnorePatterns))
	default:
		w.printf("%+v\n", result)
	}
	return w.err
}

func (r *Renderer) ruleTable(w *errWriter, t *display.RuleTable) {
	header := t.Path
	if t.Ignored {
		header += " (ignored)"
	}
	w.printf("%s\n", header)
	if len(t.Rules) == 0 {
		w.printf("  no rules\n")
		return
	}
	for _, row := range t.Rules {
		w.printf("  %s\t%s", row.Name, row.Severity)
		if opts := display.FormatOptions(row.Options); opts != "" {
			w.printf("\t%s", opts)
		}
		if row.Source != "" {
			w.printf("\t[%s]", row.Source)
		}
		w.printf("\n")
	}
}

func (r *Renderer) describe(w *errWriter, d *display.DescribeResult) {
	r.ruleTable(w, &d.RuleTable)
	if d.IgnorePattern != "" {
		w.printf("ignored by %s\n", d.IgnorePattern)
	}
	w.printf("applied:\n")
	if len(d.Applied) == 0 {
		w.printf("  none\n")
	}
	for _, s := range d.Applied {
		w.printf("  %d %s via %s: %s\n", s.Index, s.ID, s.Include, strings.Join(s.Rules, ", "))
	}
	if len(d.Excluded) > 0 {
		w.printf("excluded:\n")
		for _, s := range d.Excluded {
			w.printf("  %d %s via %s, vetoed by %s\n", s.Index, s.ID, s.Include, s.Exclude)
		}
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

// errWriter keeps the first write error so rendering code stays linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
