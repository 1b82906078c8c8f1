package legal

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Styles accepted by NewRenderer.
var Styles = []string{"auto", "dark", "light", "notty", "ascii"}

// Renderer turns markdown into styled terminal text with glamour.
// Word wrap is fixed per glamour renderer, so one is kept per width.
type Renderer struct {
	style string

	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewRenderer creates a renderer for a glamour style name.
func NewRenderer(style string) (*Renderer, error) {
	valid := false
	for _, s := range Styles {
		if s == style {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("unknown markdown style %q", style)
	}
	return &Renderer{style: style, renderers: make(map[int]*glamour.TermRenderer)}, nil
}

// Render renders doc wrapped to width columns.
func (r *Renderer) Render(doc *Document, width int) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("no document")
	}
	tr, err := r.forWidth(width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(doc.Body)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", doc.Kind.Title(), err)
	}
	return out, nil
}

func (r *Renderer) forWidth(width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 20
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if tr, ok := r.renderers[width]; ok {
		return tr, nil
	}

	styleOpt := glamour.WithStandardStyle(r.style)
	if r.style == "auto" {
		styleOpt = glamour.WithAutoStyle()
	}
	tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	r.renderers[width] = tr
	return tr, nil
}
