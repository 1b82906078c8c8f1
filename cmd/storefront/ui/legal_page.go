package ui

import (
	"fmt"

	"storefront/internal/legal"
	"storefront/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// legalHeaderHeight is the back link plus the blank line under it.
const legalHeaderHeight = 2

// LegalPage shows one rendered legal document.
type LegalPage struct {
	kind     legal.Kind
	doc      *legal.Document
	loadErr  error
	renderer *legal.Renderer
	render   *CachedRender

	layout       LayoutConfig
	compactWidth int
	viewport     viewport.Model
	help         help.Model

	styles Styles
	keys   KeyMap
	logger *zap.Logger
}

// NewLegalPage creates the page for kind. doc may be nil, in which case
// loadErr (or a generic notice) is shown instead.
func NewLegalPage(kind legal.Kind, doc *legal.Document, loadErr error, opts Options) LegalPage {
	opts = opts.withDefaults()
	p := LegalPage{
		kind:         kind,
		doc:          doc,
		loadErr:      loadErr,
		renderer:     opts.Renderer,
		render:       NewCachedRender(nil),
		layout:       NewLayoutConfig(0, 0, opts.CompactWidth),
		compactWidth: opts.CompactWidth,
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		styles:       NewStyles(ThemeFor(opts.Theme)),
		keys:         DefaultKeyMap(),
		logger:       logging.For(opts.Logger, logging.CategoryLegal),
	}
	p.refresh()
	return p
}

// Kind returns which document the page shows.
func (p LegalPage) Kind() legal.Kind { return p.kind }

// SetSize re-renders the document for the new width.
func (p LegalPage) SetSize(w, h int) LegalPage {
	p.layout = NewLayoutConfig(w, h, p.compactWidth)
	p.viewport.Width = p.layout.PageWidth()
	p.viewport.Height = max(p.layout.BodyHeight()-legalHeaderHeight, 1)
	p.help.Width = p.layout.PageWidth()
	p.refresh()
	return p
}

// Update scrolls the document. Navigation keys are handled by App.
func (p LegalPage) Update(msg tea.Msg) (LegalPage, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		p.viewport, cmd = p.viewport.Update(msg)
	}
	return p, cmd
}

// View renders the header, the document and the help bar.
func (p LegalPage) View() string {
	header := p.styles.Link.Render("← Back to App") + "  " + p.styles.Title.Render(p.kind.Title())
	helpView := p.styles.Help.Render(p.help.View(legalHelp{keys: p.keys}))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", p.viewport.View(), helpView)
}

func (p *LegalPage) refresh() {
	p.viewport.SetContent(p.body())
}

func (p LegalPage) body() string {
	if p.doc == nil {
		msg := fmt.Sprintf("%s is not available.", p.kind.Title())
		if p.loadErr != nil {
			msg += "\n" + p.loadErr.Error()
		}
		return p.styles.Error.Render(msg)
	}
	if p.renderer == nil {
		return p.doc.Body
	}

	width := p.layout.PageWidth()
	out, err := p.render.Render([]interface{}{p.doc.Path, p.doc.Body, width}, func() (string, error) {
		return p.renderer.Render(p.doc, width)
	})
	if err != nil {
		p.logger.Warn("failed to render legal document",
			zap.String("kind", p.kind.Slug()),
			zap.Error(err))
		return p.doc.Body
	}
	return out
}
