package main

import (
	"fmt"

	"storefront/cmd/storefront/ui"
	"storefront/internal/content"

	"github.com/spf13/cobra"
)

var (
	renderWidth    int
	renderExpanded bool
)

// renderCmd prints the product page once
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the product page to stdout",
	Long: `Renders the listing once without the interactive program.

Example:
  storefront render --width 100 --expanded`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth < 1 {
		return fmt.Errorf("--width must be positive, got %d", renderWidth)
	}

	c, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	out := ui.RenderStatic(c, renderWidth, renderExpanded, ui.OptionsFromConfig(cfg))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
