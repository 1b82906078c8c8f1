// Package ui provides the visual styling and bubbletea models for the
// storefront listing page.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Store colour palette.
var (
	// Light Mode Colors (Default)
	LightForeground = lipgloss.Color("#111827")
	LightMuted      = lipgloss.Color("#9ca3af")
	LightSubtle     = lipgloss.Color("#4b5563")
	LightBorder     = lipgloss.Color("#e5e7eb")
	LightCard       = lipgloss.Color("#f9fafb")

	// Dark Mode Colors
	DarkForeground = lipgloss.Color("#f3f4f6")
	DarkMuted      = lipgloss.Color("#6b7280")
	DarkSubtle     = lipgloss.Color("#d1d5db")
	DarkBorder     = lipgloss.Color("#374151")
	DarkCard       = lipgloss.Color("#1f2937")

	// Semantic Colors (same in both modes)
	Accent      = lipgloss.Color("#3b82f6") // blue-500
	StarYellow  = lipgloss.Color("#eab308") // yellow-500
	StarOrange  = lipgloss.Color("#fb923c") // orange-400
	StarGray    = lipgloss.Color("#d1d5db") // gray-300
	Destructive = lipgloss.Color("#e53935")
	Tooltip     = lipgloss.Color("#111827") // gray-900
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Muted:      LightMuted,
		Subtle:     LightSubtle,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Subtle:     DarkSubtle,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor resolves a configured theme name. "auto" (or anything unknown)
// falls back to detection.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are likely dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}

	if os.Getenv("STOREFRONT_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Text
	Title        lipgloss.Style
	SectionTitle lipgloss.Style
	Body         lipgloss.Style
	Subtle       lipgloss.Style
	Muted        lipgloss.Style
	Bold         lipgloss.Style
	Score        lipgloss.Style

	// Interactive
	Link    lipgloss.Style
	Button  lipgloss.Style
	Tooltip lipgloss.Style

	// Components
	Badge   lipgloss.Style
	Icon    lipgloss.Style
	Card    lipgloss.Style
	Divider lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Subtle),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.Subtle),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Score: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		Link: lipgloss.NewStyle().
			Foreground(Accent),

		Button: lipgloss.NewStyle().
			Background(Accent).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 3),

		Tooltip: lipgloss.NewStyle().
			Background(Tooltip).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(theme.Muted).
			Padding(0, 0),

		Icon: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(Accent).
			Bold(true).
			Width(7).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal rule
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
