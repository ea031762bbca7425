package topics

// Renderer turns topic source into what the help command prints. ext is
// the topic file extension, including the dot.
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics verbatim
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}
