// Package markdown renders markdown documents for in-TUI preview.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle strips glamour's document margins so rendered output
// lines up with the preview box edges. Colors still follow the
// terminal's dark/light detection.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour configured for preview panes.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer that word-wraps at the given width.
func New(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown source to styled terminal output.
func (r *Renderer) Render(source string) (string, error) {
	return r.renderer.Render(source)
}
