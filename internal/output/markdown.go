package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown prints md for a terminal, falling back to the raw text if
// the renderer cannot be built or fails.
func RenderMarkdown(w io.Writer, md string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		_, werr := fmt.Fprint(w, md)
		return werr
	}

	out, err := renderer.Render(md)
	if err != nil {
		Logger.Debug("Markdown rendering failed, printing raw", "error", err)
		out = md
	}
	_, err = fmt.Fprint(w, out)
	return err
}
