package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with the glamour library.
// Topics in other formats pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty") or a
	// path to a custom style file. "auto" and "" detect the terminal.
	Style string

	// Width wraps output at the given column. 0 lets glamour decide.
	Width int
}

// NewGlamourRenderer creates a markdown renderer that adapts to the
// terminal's background and width.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. Rendering
// failures fall back to the raw content rather than erroring: help
// text should always print.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	styleOpt := glamour.WithAutoStyle()
	if r.Style != "" && r.Style != "auto" {
		styleOpt = glamour.WithStylePath(r.Style)
	}

	options := []glamour.TermRendererOption{styleOpt}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
