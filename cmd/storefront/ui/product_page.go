package ui

import (
	"fmt"
	"path"
	"strings"

	"storefront/internal/content"
	"storefront/internal/logging"
	"storefront/internal/rating"
	"storefront/internal/textclamp"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"
)

// DefaultReviewLines clamps review bodies on the cards.
const DefaultReviewLines = 6

// ProductPage is the scrolling listing page.
type ProductPage struct {
	id      string
	rev     int
	content *content.Content

	layout       LayoutConfig
	compactWidth int
	reviewLines  int
	glyphs       GlyphSet

	description ExpandableText
	share       ShareButton
	viewport    viewport.Model
	help        help.Model
	bars        progress.Model
	cache       *RenderCache

	status  string
	mounted bool

	styles Styles
	keys   KeyMap
	logger *zap.Logger
}

// NewProductPage creates the page for c. It is unmounted until Mount.
func NewProductPage(c *content.Content, opts Options) ProductPage {
	opts = opts.withDefaults()
	styles := NewStyles(ThemeFor(opts.Theme))
	keys := DefaultKeyMap()

	bars := progress.New(
		progress.WithSolidFill(string(StarYellow)),
		progress.WithoutPercentage(),
		progress.WithWidth(20),
	)
	bars.EmptyColor = string(styles.Theme.Border)

	var desc, link string
	if c != nil {
		desc, link = c.Description, c.App.LiveAppLink
	}

	p := ProductPage{
		id:           uuid.NewString(),
		content:      c,
		layout:       NewLayoutConfig(0, 0, opts.CompactWidth),
		compactWidth: opts.CompactWidth,
		reviewLines:  opts.ReviewLines,
		glyphs:       GlyphsFor(opts.Glyphs),
		description: NewExpandableText(desc,
			WithMaxLines(opts.DescriptionLines),
			WithSettleDelay(opts.SettleDelay),
			WithTextStyles(styles),
			WithToggleKeys(keys),
		),
		share:    NewShareButton(opts.Share, link, styles, keys),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		bars:     bars,
		cache:    NewRenderCache(16),
		styles:   styles,
		keys:     keys,
		logger:   logging.For(opts.Logger, logging.CategoryUI),
	}
	p.share = p.share.SetHidden(p.layout.IsCompact)
	p.refresh()
	return p
}

// Mount starts the description's measurement and the share subscription.
func (p ProductPage) Mount() (ProductPage, tea.Cmd) {
	width := 0
	if p.layout.TerminalWidth > 0 {
		width = p.layout.ContentWidth()
	}

	var measure, listen tea.Cmd
	p.description, measure = p.description.Mount(width)
	p.share, listen = p.share.Mount()
	p.mounted = true
	p.refresh()
	return p, tea.Batch(measure, listen)
}

// Unmount releases everything Mount acquired.
func (p ProductPage) Unmount() ProductPage {
	p.description = p.description.Unmount()
	p.share = p.share.Unmount()
	p.mounted = false
	return p
}

// Mounted reports whether the page is the active one.
func (p ProductPage) Mounted() bool { return p.mounted }

// Description exposes the description component.
func (p ProductPage) Description() ExpandableText { return p.description }

// Share exposes the share control.
func (p ProductPage) Share() ShareButton { return p.share }

// Content returns the listing on display.
func (p ProductPage) Content() *content.Content { return p.content }

// SetSize lays the page out for a terminal of w by h cells.
func (p ProductPage) SetSize(w, h int) ProductPage {
	p.layout = NewLayoutConfig(w, h, p.compactWidth)
	p.share = p.share.SetHidden(p.layout.IsCompact)
	p.viewport.Width = p.layout.PageWidth()
	p.viewport.Height = p.layout.BodyHeight()
	p.help.Width = p.layout.PageWidth()
	p.description, _ = p.description.Update(tea.WindowSizeMsg{Width: p.layout.ContentWidth(), Height: h})
	p.refresh()
	return p
}

// SetContent swaps in a reloaded listing.
func (p ProductPage) SetContent(c *content.Content) ProductPage {
	if c == nil {
		return p
	}
	p.content = c
	p.rev++
	p.description = p.description.SetText(c.Description)
	p.share = p.share.SetLink(c.App.LiveAppLink)
	p.refresh()
	return p
}

// SetStatus shows a one-line notice above the help bar. Empty clears it.
func (p ProductPage) SetStatus(status string) ProductPage {
	p.status = status
	return p
}

// Status returns the current notice.
func (p ProductPage) Status() string { return p.status }

// Update handles page-local keys and the components' async messages.
func (p ProductPage) Update(msg tea.Msg) (ProductPage, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case measureMsg:
		p.description, cmd = p.description.Update(msg)
		p.refresh()

	case shareFeedbackMsg, shareResultMsg:
		p.share, cmd = p.share.Update(msg)
		p.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Toggle):
			before := p.description.State()
			p.description, cmd = p.description.Update(msg)
			if p.description.State() != before {
				p.logger.Debug("description toggled", zap.Stringer("state", p.description.State()))
			}
			p.refresh()
		case key.Matches(msg, p.keys.Share):
			p.share, cmd = p.share.Update(msg)
		default:
			p.viewport, cmd = p.viewport.Update(msg)
		}

	case tea.MouseMsg:
		p.viewport, cmd = p.viewport.Update(msg)
	}

	return p, cmd
}

// View renders the visible part of the page, the status line and help.
func (p ProductPage) View() string {
	status := ""
	if p.status != "" {
		status = p.styles.Error.Render(p.status)
	}
	helpView := p.styles.Help.Render(p.help.View(productHelp{keys: p.keys, showShare: p.share.Enabled()}))
	return lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), status, helpView)
}

func (p *ProductPage) refresh() {
	p.viewport.SetContent(p.body())
}

// body is the full, unscrolled page.
func (p ProductPage) body() string {
	if p.content == nil {
		return p.styles.Muted.Render("No listing loaded.")
	}
	w := p.layout.ContentWidth()

	sections := []string{
		p.renderHeader(w),
		p.cached("screenshots", func() string { return p.renderScreenshots(w) }),
		p.renderDescription(),
		p.cached("whatsnew", func() string { return p.renderWhatsNew(w) }),
		p.cached("ratings", func() string { return p.renderRatings(w) }),
		p.cached("information", func() string { return p.renderInformation(w) }),
		p.renderFooter(),
	}

	var parts []string
	for _, s := range sections {
		if s != "" {
			parts = append(parts, s)
		}
	}
	divider := "\n" + p.styles.RenderDivider(w) + "\n"
	return lipgloss.NewStyle().Padding(0, PageHorizontalPad).Render(strings.Join(parts, divider))
}

// cached memoises sections that depend only on the content and the width.
func (p ProductPage) cached(section string, render func() string) string {
	key := ComputeKey(p.id, section, p.rev, p.layout.ContentWidth())
	out, _ := p.cache.GetOrCompute(key, func() (string, error) {
		return render(), nil
	})
	return out
}

func (p ProductPage) renderHeader(w int) string {
	app := p.content.App

	title := p.styles.Title.Render(app.Name)
	if app.AgeRating != "" {
		title += " " + p.styles.Badge.Render(app.AgeRating)
	}

	lines := []string{title}
	if app.Developer != "" {
		lines = append(lines, p.styles.Link.Render(app.Developer))
	}
	if app.PriceType != "" {
		lines = append(lines, p.styles.Muted.Render(app.PriceType))
	}
	lines = append(lines,
		Stars(app.OverallRating, HeaderStars(p.glyphs))+" "+
			p.styles.Muted.Render(rating.FormatCount(app.TotalRatings)+" Ratings"),
		"",
	)

	action := ""
	if app.ButtonText != "" {
		action = p.styles.Button.Render(app.ButtonText)
	}
	if s := p.share.View(); s != "" {
		if action != "" {
			action += "  "
		}
		action += s
	}
	if action != "" {
		lines = append(lines, action)
	}

	icon := p.styles.Icon.Render(initials(app.Name))
	if p.layout.IsCompact {
		return lipgloss.JoinVertical(lipgloss.Left, icon, strings.Join(lines, "\n"))
	}
	info := lipgloss.NewStyle().Width(w - IconColumnWidth).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, icon, "  ", info)
}

func (p ProductPage) renderScreenshots(w int) string {
	shots := p.content.Screenshots
	if len(shots) == 0 {
		return ""
	}

	n := min(p.layout.CardsPerRow(ScreenshotCardWidth), len(shots))
	card := p.styles.Card.Width(ScreenshotCardWidth - 2).Align(lipgloss.Center)
	labelWidth := uint(ScreenshotCardWidth - CardChromeWidth)

	cards := make([]string, 0, n)
	for i, s := range shots[:n] {
		label := truncate.StringWithTail(path.Base(s), labelWidth, textclamp.Ellipsis)
		cards = append(cards, card.Render(fmt.Sprintf("Screenshot %d\n%s", i+1, p.styles.Muted.Render(label))))
	}

	out := p.styles.SectionTitle.Render("Screenshots") + "\n" + joinCards(cards)
	if rest := len(shots) - n; rest > 0 {
		out += "\n" + p.styles.Muted.Render(fmt.Sprintf("+%d more", rest))
	}
	return out
}

func (p ProductPage) renderDescription() string {
	if p.content.Description == "" {
		return ""
	}
	return p.styles.SectionTitle.Render("Description") + "\n" + p.description.View()
}

func (p ProductPage) renderWhatsNew(w int) string {
	wn := p.content.WhatsNew
	if wn.Version == "" && wn.Content == "" {
		return ""
	}

	out := p.styles.SectionTitle.Render("What's New") + "\n"
	if wn.Version != "" {
		out += p.styles.Muted.Render("Version "+wn.Version) + "\n"
	}
	return out + p.styles.Body.Render(strings.Join(textclamp.Wrap(wn.Content, w), "\n"))
}

func (p ProductPage) renderRatings(w int) string {
	r := p.content.Ratings

	score := lipgloss.NewStyle().Width(ScoreColumnWidth).Align(lipgloss.Center).Render(
		p.styles.Score.Render(fmt.Sprintf("%.1f", r.Overall)) + "\n" + p.styles.Muted.Render("out of 5"),
	)

	barWidth := max(w-ScoreColumnWidth-4, 10)
	if p.layout.IsCompact {
		barWidth = max(w-4, 10)
	}
	bars := p.bars
	bars.Width = barWidth

	rows := make([]string, 0, rating.DefaultStarCount+1)
	for _, row := range r.Distribution.Rows() {
		rows = append(rows, fmt.Sprintf("%d %s", row.Stars, bars.ViewAs(row.Percent/100)))
	}
	rows = append(rows, p.styles.Muted.Render(rating.FormatCount(r.TotalRatings)+" Ratings"))
	distribution := strings.Join(rows, "\n")

	var summary string
	if p.layout.IsCompact {
		summary = lipgloss.JoinVertical(lipgloss.Left, score, distribution)
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, score, "  ", distribution)
	}

	out := p.styles.SectionTitle.Render("Ratings & Reviews") + "\n" + summary
	if len(p.content.Reviews) > 0 {
		out += "\n\n" + p.renderReviews(w)
	}
	return out
}

func (p ProductPage) renderReviews(w int) string {
	cardWidth := min(ReviewCardWidth, w)
	inner := cardWidth - CardChromeWidth
	perRow := p.layout.CardsPerRow(cardWidth)
	card := p.styles.Card.Width(cardWidth - 2)

	cards := make([]string, 0, len(p.content.Reviews))
	for _, rv := range p.content.Reviews {
		lines := []string{
			p.styles.Bold.Render(textclamp.Clamp(rv.Title, inner, 1)),
			Stars(rv.Rating, ReviewStars(p.glyphs)) + "  " + p.styles.Muted.Render(rv.Date),
			p.styles.Body.Render(textclamp.Clamp(rv.Content, inner, p.reviewLines)),
		}
		if rv.User != "" {
			lines = append(lines, p.styles.Muted.Render(rv.User))
		}
		cards = append(cards, card.Render(strings.Join(lines, "\n")))
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		rows = append(rows, joinCards(cards[i:min(i+perRow, len(cards))]))
	}
	return strings.Join(rows, "\n")
}

func (p ProductPage) renderInformation(w int) string {
	info := p.content.Information

	purchases := "No"
	if info.InAppPurchases {
		purchases = "Yes"
	}
	items := [][2]string{
		{"Seller", info.Seller},
		{"Category", info.Category},
		{"Size", info.Size},
		{"Language", info.Language},
		{"Compatibility", info.Compatibility},
		{"Age Rating", info.AgeRating},
		{"In-App Purchases", purchases},
	}

	cols := p.layout.InfoColumns()
	cell := lipgloss.NewStyle().Width(w / cols).MarginBottom(1)

	var rows []string
	for i := 0; i < len(items); i += cols {
		var cells []string
		for _, it := range items[i:min(i+cols, len(items))] {
			cells = append(cells, cell.Render(p.styles.Muted.Render(it[0])+"\n"+p.styles.Body.Render(it[1])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	out := p.styles.SectionTitle.Render("Information") + "\n" + strings.Join(rows, "\n")
	if info.ShowPricing() {
		lines := []string{p.styles.Bold.Render("In-App Purchases")}
		for _, tier := range info.Pricing {
			gap := max(w-lipgloss.Width(tier.Name)-lipgloss.Width(tier.Price), 1)
			lines = append(lines, p.styles.Body.Render(tier.Name)+strings.Repeat(" ", gap)+p.styles.Bold.Render(tier.Price))
		}
		out += "\n" + strings.Join(lines, "\n")
	}
	return out
}

func (p ProductPage) renderFooter() string {
	return p.styles.Link.Render("Privacy Policy") + p.styles.Muted.Render(" (p)") +
		"   " +
		p.styles.Link.Render("Terms of Service") + p.styles.Muted.Render(" (t)")
}

func joinCards(cards []string) string {
	gap := strings.Repeat(" ", CardGap)
	parts := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// initials returns up to two capital letters for the icon box.
func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(word))[0])
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
