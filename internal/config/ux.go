package config

import "fmt"

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	// Theme is auto, light or dark
	Theme string `yaml:"theme"`

	// Glyphs selects the star glyph set: unicode or ascii
	Glyphs string `yaml:"glyphs"`

	// DescriptionLines is how many lines the collapsed description shows
	DescriptionLines int `yaml:"description_lines"`

	// ReviewLines clamps review bodies
	ReviewLines int `yaml:"review_lines"`

	// SettleDelay defers the first overflow measurement after mount
	SettleDelay string `yaml:"settle_delay"`

	// CompactWidth hides the share control below this many columns
	CompactWidth int `yaml:"compact_width"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:            "auto",
		Glyphs:           "unicode",
		DescriptionLines: 2,
		ReviewLines:      6,
		SettleDelay:      "100ms",
		CompactWidth:     60,
	}
}

// Validate checks enum values and line counts.
func (u UIConfig) Validate() error {
	if !oneOf(u.Theme, "auto", "light", "dark") {
		return fmt.Errorf("ui.theme %q: want auto, light or dark", u.Theme)
	}
	if !oneOf(u.Glyphs, "unicode", "ascii") {
		return fmt.Errorf("ui.glyphs %q: want unicode or ascii", u.Glyphs)
	}
	if u.DescriptionLines < 1 {
		return fmt.Errorf("ui.description_lines must be at least 1, got %d", u.DescriptionLines)
	}
	if u.ReviewLines < 1 {
		return fmt.Errorf("ui.review_lines must be at least 1, got %d", u.ReviewLines)
	}
	if u.CompactWidth < 0 {
		return fmt.Errorf("ui.compact_width must not be negative, got %d", u.CompactWidth)
	}
	return nil
}
