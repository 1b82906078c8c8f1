package ui

import (
	"time"

	"storefront/internal/config"
	"storefront/internal/legal"
	"storefront/internal/share"

	"go.uber.org/zap"
)

// Options configures the pages and the root model.
type Options struct {
	Theme            string
	Glyphs           string
	DescriptionLines int
	ReviewLines      int
	// SettleDelay of zero means DefaultSettleDelay.
	SettleDelay  time.Duration
	CompactWidth int

	Share     *share.Action
	Renderer  *legal.Renderer
	Documents map[legal.Kind]*legal.Document
	// DocumentErrors records why a document is missing, shown in place of it.
	DocumentErrors map[legal.Kind]error

	Logger *zap.Logger
}

// OptionsFromConfig maps the ui section of the configuration onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Theme:            cfg.UI.Theme,
		Glyphs:           cfg.UI.Glyphs,
		DescriptionLines: cfg.UI.DescriptionLines,
		ReviewLines:      cfg.UI.ReviewLines,
		SettleDelay:      cfg.GetSettleDelay(),
		CompactWidth:     cfg.UI.CompactWidth,
	}
}

func (o Options) withDefaults() Options {
	if o.DescriptionLines < 1 {
		o.DescriptionLines = DefaultDescriptionLines
	}
	if o.ReviewLines < 1 {
		o.ReviewLines = DefaultReviewLines
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = DefaultSettleDelay
	}
	if o.CompactWidth <= 0 {
		o.CompactWidth = DefaultCompactWidth
	}
	return o
}
