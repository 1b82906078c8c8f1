package main

import (
	"fmt"

	"storefront/internal/legal"
	"storefront/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var legalWidth int

// legalCmd prints one rendered legal document
var legalCmd = &cobra.Command{
	Use:       "legal [privacy|terms]",
	Short:     "Print the privacy policy or the terms of service",
	ValidArgs: []string{"privacy", "terms"},
	Args:      cobra.ExactArgs(1),
	RunE:      runLegal,
}

func runLegal(cmd *cobra.Command, args []string) error {
	kind, err := legal.ParseKind(args[0])
	if err != nil {
		return err
	}

	doc, err := legal.Load(cfg.Legal.Dir, kind)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryLegal).Debug("loaded document", zap.String("path", doc.Path))

	r, err := legal.NewRenderer(cfg.Legal.Style)
	if err != nil {
		return err
	}
	out, err := r.Render(doc, legalWidth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
