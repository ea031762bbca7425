package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders .md topics for the terminal. Other topics pass
// through unchanged, and so does markdown glamour fails on.
type GlamourRenderer struct {
	// Style is a glamour style name or path; empty or "auto" detects
	// light and dark terminals
	Style string
	// Width wraps at this column; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer detects style and width
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		opts = []glamour.TermRendererOption{glamour.WithStylePath(r.Style)}
	}
	if r.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
