package ui

import (
	"strings"

	"storefront/internal/rating"

	"github.com/charmbracelet/lipgloss"
)

// StarSize controls the spacing between star glyphs.
type StarSize int

const (
	StarSmall StarSize = iota
	StarMedium
	StarLarge
)

func (s StarSize) gap() string {
	switch s {
	case StarMedium:
		return " "
	case StarLarge:
		return "  "
	default:
		return ""
	}
}

// GlyphSet is the set of runes used to draw one star in each state.
// Half is a star whose left half is filled: the terminal equivalent of an
// empty star overlaid with a filled star clipped to 50% width.
type GlyphSet struct {
	Full  string
	Half  string
	Empty string
}

var (
	UnicodeGlyphs = GlyphSet{Full: "★", Half: "⯪", Empty: "☆"}
	ASCIIGlyphs   = GlyphSet{Full: "*", Half: "+", Empty: "."}
)

// GlyphsFor resolves a configured glyph set name.
func GlyphsFor(name string) GlyphSet {
	if name == "ascii" {
		return ASCIIGlyphs
	}
	return UnicodeGlyphs
}

// StarStyle is the per-call-site presentation of a star row. None of it
// affects which states are drawn.
type StarStyle struct {
	Size   StarSize
	Filled lipgloss.TerminalColor
	Empty  lipgloss.TerminalColor
	Glyphs GlyphSet
}

// HeaderStars is the listing header style (yellow on gray).
func HeaderStars(glyphs GlyphSet) StarStyle {
	return StarStyle{Size: StarMedium, Filled: StarYellow, Empty: StarGray, Glyphs: glyphs}
}

// ReviewStars is the small review card style (orange on gray).
func ReviewStars(glyphs GlyphSet) StarStyle {
	return StarStyle{Size: StarSmall, Filled: StarOrange, Empty: StarGray, Glyphs: glyphs}
}

// StarRow draws a computed row of states.
func StarRow(states []rating.StarState, style StarStyle) string {
	filled := lipgloss.NewStyle().Foreground(style.Filled)
	empty := lipgloss.NewStyle().Foreground(style.Empty)

	glyphs := make([]string, len(states))
	for i, s := range states {
		switch s {
		case rating.Full:
			glyphs[i] = filled.Render(style.Glyphs.Full)
		case rating.Half:
			glyphs[i] = filled.Render(style.Glyphs.Half)
		default:
			glyphs[i] = empty.Render(style.Glyphs.Empty)
		}
	}
	return strings.Join(glyphs, style.Size.gap())
}

// Stars renders a score as a five-star row.
func Stars(score float64, style StarStyle) string {
	return StarRow(rating.Render(score, rating.DefaultStarCount), style)
}
