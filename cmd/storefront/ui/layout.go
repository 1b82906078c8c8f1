// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for page sizing
const (
	// Page frame
	MaxPageWidth      = 100
	PageHorizontalPad = 2
	HelpBarHeight     = 1
	StatusBarHeight   = 1
	MinimumPageWidth  = 24
	MinimumPageHeight = 6

	// Cards
	ScreenshotCardWidth = 18
	ReviewCardWidth     = 38
	CardChromeWidth     = 4 // border and padding, both sides
	CardGap             = 2

	// Header
	IconColumnWidth  = 11
	ShareColumnWidth = 10

	// Ratings summary
	ScoreColumnWidth = 12

	// Responsive breakpoints (grid: 1 / 2 / 3 columns)
	DefaultCompactWidth = 60
	TwoColumnWidth      = 60
	ThreeColumnWidth    = 90
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height, compactWidth int) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		IsCompact:      width < compactWidth,
	}
}

// PageWidth is the width of the centred page column.
func (l LayoutConfig) PageWidth() int {
	w := l.TerminalWidth
	if w > MaxPageWidth {
		w = MaxPageWidth
	}
	if w < MinimumPageWidth {
		w = MinimumPageWidth
	}
	return w
}

// ContentWidth is the text width inside the page padding.
func (l LayoutConfig) ContentWidth() int {
	return l.PageWidth() - PageHorizontalPad*2
}

// BodyHeight is the scrollable height left after the help and status bars.
func (l LayoutConfig) BodyHeight() int {
	h := l.TerminalHeight - HelpBarHeight - StatusBarHeight
	if h < MinimumPageHeight {
		h = MinimumPageHeight
	}
	return h
}

// InfoColumns returns how many columns the information grid uses.
func (l LayoutConfig) InfoColumns() int {
	switch w := l.ContentWidth(); {
	case w >= ThreeColumnWidth:
		return 3
	case w >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// CardsPerRow returns how many fixed-width cards fit in the content width.
func (l LayoutConfig) CardsPerRow(cardWidth int) int {
	n := (l.ContentWidth() + CardGap) / (cardWidth + CardGap)
	if n < 1 {
		n = 1
	}
	return n
}
