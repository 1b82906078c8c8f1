package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/cmd/storefront/ui"
	"storefront/internal/content"
	"storefront/internal/legal"
	"storefront/internal/logging"
	"storefront/internal/share"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// noWatch disables live reload of the content file.
var noWatch bool

// runInteractive opens the full-screen page.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGTERM)
	defer stop()

	boot := logging.For(logger, logging.CategoryBoot)

	startup, err := loadStartup(ctx)
	if err != nil {
		return err
	}

	// OSC52 sequences go to stderr so they never interleave with frames.
	clip, err := share.NewClipboard(cfg.Share.Backend, os.Stderr)
	if err != nil {
		return err
	}
	action := share.NewAction(clip,
		share.WithWindow(cfg.GetFeedbackWindow()),
		share.WithLogger(logging.For(logger, logging.CategoryShare)),
	)
	defer action.Close()

	renderer, err := legal.NewRenderer(cfg.Legal.Style)
	if err != nil {
		return err
	}

	opts := ui.OptionsFromConfig(cfg)
	opts.Share = action
	opts.Renderer = renderer
	opts.Documents = startup.docs
	opts.DocumentErrors = startup.docErrs
	opts.Logger = logger

	p := tea.NewProgram(ui.NewApp(startup.content, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if cfg.Content.Watch && !noWatch {
		w, err := content.NewWatcher(cfg.Content.Path,
			func(c *content.Content, err error) {
				p.Send(ui.ContentReloadedMsg{Content: c, Err: err})
			},
			content.WithDebounce(cfg.GetReloadDebounce()),
			content.WithWatchLogger(logging.For(logger, logging.CategoryContent)),
		)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	boot.Info("starting interactive page",
		zap.String("content", cfg.Content.Path),
		zap.Bool("watch", cfg.Content.Watch && !noWatch))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("program failed: %w", err)
	}
	boot.Info("interactive page closed")
	return nil
}

type startupData struct {
	content *content.Content
	docs    map[legal.Kind]*legal.Document
	docErrs map[legal.Kind]error
}

// loadStartup loads the listing and the legal documents concurrently.
// A missing legal document is not fatal; its page shows the error instead.
func loadStartup(ctx context.Context) (*startupData, error) {
	var c *content.Content
	docs := make([]*legal.Document, len(legal.Kinds))
	docErrs := make([]error, len(legal.Kinds))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = content.Load(cfg.Content.Path)
		return err
	})
	for i, kind := range legal.Kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs[i], docErrs[i] = legal.Load(cfg.Legal.Dir, kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &startupData{
		content: c,
		docs:    make(map[legal.Kind]*legal.Document, len(legal.Kinds)),
		docErrs: make(map[legal.Kind]error),
	}
	log := logging.For(logger, logging.CategoryLegal)
	for i, kind := range legal.Kinds {
		if docErrs[i] != nil {
			log.Warn("legal document unavailable", zap.String("kind", kind.Slug()), zap.Error(docErrs[i]))
			out.docErrs[kind] = docErrs[i]
			continue
		}
		out.docs[kind] = docs[i]
	}
	return out, nil
}
