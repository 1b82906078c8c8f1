package ui

import (
	"fmt"

	"storefront/internal/content"
	"storefront/internal/legal"
	"storefront/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Page identifies a routed page.
type Page int

const (
	PageProduct Page = iota
	PagePrivacy
	PageTerms
)

func (p Page) String() string {
	switch p {
	case PagePrivacy:
		return "privacy"
	case PageTerms:
		return "terms"
	default:
		return "product"
	}
}

func pageFor(kind legal.Kind) Page {
	if kind == legal.Terms {
		return PageTerms
	}
	return PagePrivacy
}

// ContentReloadedMsg is sent by the content watcher after the listing file
// changed. Err is set when the new file could not be used.
type ContentReloadedMsg struct {
	Content *content.Content
	Err     error
}

// App is the root model. It owns the pages and routes messages to the
// active one.
type App struct {
	page    Page
	product ProductPage
	legal   map[Page]LegalPage

	width  int
	height int

	keys    KeyMap
	logger  *zap.Logger
	initCmd tea.Cmd
}

// NewApp builds the root model with the product page mounted.
func NewApp(c *content.Content, opts Options) App {
	a := App{
		page:    PageProduct,
		product: NewProductPage(c, opts),
		legal:   make(map[Page]LegalPage, len(legal.Kinds)),
		keys:    DefaultKeyMap(),
		logger:  logging.For(opts.Logger, logging.CategoryUI),
	}
	for _, kind := range legal.Kinds {
		a.legal[pageFor(kind)] = NewLegalPage(kind, opts.Documents[kind], opts.DocumentErrors[kind], opts)
	}
	a.product, a.initCmd = a.product.Mount()
	return a
}

// Init returns the product page's mount work.
func (a App) Init() tea.Cmd {
	return a.initCmd
}

// Page returns the active page.
func (a App) Page() Page { return a.page }

// Product returns the product page.
func (a App) Product() ProductPage { return a.product }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.page == PageProduct {
			a.product = a.product.SetSize(msg.Width, msg.Height)
		} else {
			a.legal[a.page] = a.legal[a.page].SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.product = a.product.Unmount()
			return a, tea.Quit
		}
		if a.page == PageProduct {
			switch {
			case key.Matches(msg, a.keys.Privacy):
				return a.navigate(PagePrivacy)
			case key.Matches(msg, a.keys.Terms):
				return a.navigate(PageTerms)
			}
			a.product, cmd = a.product.Update(msg)
			return a, cmd
		}
		if key.Matches(msg, a.keys.Back) {
			return a.navigate(PageProduct)
		}
		var lp LegalPage
		lp, cmd = a.legal[a.page].Update(msg)
		a.legal[a.page] = lp
		return a, cmd

	case tea.MouseMsg:
		if a.page == PageProduct {
			a.product, cmd = a.product.Update(msg)
		} else {
			var lp LegalPage
			lp, cmd = a.legal[a.page].Update(msg)
			a.legal[a.page] = lp
		}
		return a, cmd

	case ContentReloadedMsg:
		if msg.Err != nil {
			a.logger.Warn("content reload failed; keeping previous listing", zap.Error(msg.Err))
			a.product = a.product.SetStatus(fmt.Sprintf("Reload failed: %v", msg.Err))
			return a, nil
		}
		a.logger.Info("content reloaded")
		a.product = a.product.SetContent(msg.Content).SetStatus("")
		return a, nil
	}

	// Deferred measurements and share feedback belong to the product page
	// whether or not it is showing; unmounted components drop them.
	a.product, cmd = a.product.Update(msg)
	return a, cmd
}

func (a App) navigate(to Page) (tea.Model, tea.Cmd) {
	if to == a.page {
		return a, nil
	}
	a.logger.Debug("navigate", zap.Stringer("from", a.page), zap.Stringer("to", to))

	var cmd tea.Cmd
	if to == PageProduct {
		a.product = a.product.SetSize(a.width, a.height)
		a.product, cmd = a.product.Mount()
	} else {
		a.product = a.product.Unmount()
		a.legal[to] = a.legal[to].SetSize(a.width, a.height)
	}
	a.page = to
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.page == PageProduct {
		return a.product.View()
	}
	return a.legal[a.page].View()
}
