package main

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/content"
	"storefront/internal/legal"

	"github.com/spf13/cobra"
)

// validateCmd checks the content file and the legal documents
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the content file and legal documents",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	c, contentErr := content.Load(cfg.Content.Path)
	if contentErr != nil {
		fmt.Fprintf(out, "✗ %s: %v\n", cfg.Content.Path, contentErr)
	} else {
		fmt.Fprintf(out, "✓ %s: %s, %d reviews, %d screenshots\n",
			cfg.Content.Path, c.App.Name, len(c.Reviews), len(c.Screenshots))
	}

	docs, legalErr := legal.LoadAll(commandContext(cmd), cfg.Legal.Dir)
	if legalErr != nil {
		fmt.Fprintf(out, "✗ %s: %v\n", cfg.Legal.Dir, legalErr)
	} else {
		for _, kind := range legal.Kinds {
			fmt.Fprintf(out, "✓ %s: %s\n", kind.Title(), docs[kind].Path)
		}
	}

	if err := errors.Join(contentErr, legalErr); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// commandContext returns the command's context, or Background when the
// command was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
