package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
)

var (
	mdRenderer      *glamour.TermRenderer
	mdRendererMu    sync.Mutex
	mdRendererWidth int
)

// RenderMarkdown renders text for the terminal at the given wrap width and
// falls back to the raw text when glamour fails. The renderer is rebuilt
// only when the width changes.
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	if mdRenderer == nil || width != mdRendererWidth {
		// a fixed style; auto detection queries the terminal while bubbletea owns it
		r, err := glamour.NewTermRenderer(
			glamour.WithStyles(glamourstyles.DarkStyleConfig),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		mdRenderer = r
		mdRendererWidth = width
	}

	out, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
