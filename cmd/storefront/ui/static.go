package ui

import (
	"storefront/internal/content"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderStatic renders the whole product page once, without a program,
// for piping to stdout. expanded opens the description when it overflows.
func RenderStatic(c *content.Content, width int, expanded bool, opts Options) string {
	p := NewProductPage(c, opts).SetSize(width, 0)

	p.description, _ = p.description.Mount(p.layout.ContentWidth())
	p.description, _ = p.description.Update(tea.WindowSizeMsg{Width: p.layout.ContentWidth()})
	if expanded {
		p.description.Toggle()
	}

	return p.body()
}
