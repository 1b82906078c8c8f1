package main

import (
	"fmt"
	"os"

	"storefront/internal/config"
	"storefront/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	contentPath string
	legalDir    string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Terminal product listing page",
	Long: `storefront renders an app store style product listing in the terminal.

Run without arguments to open the interactive page. The content file is
reloaded whenever it changes on disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}

		// The interactive page owns the terminal, so only subcommands may
		// log to stderr.
		logCfg := cfg.Logging
		if cmd != cmd.Root() {
			logCfg.File = "stderr"
		}
		logger, err = logging.New(logCfg, verbose)
		if err != nil {
			return err
		}
		logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
			zap.String("config", configPath),
			zap.String("content", cfg.Content.Path),
			zap.String("legal_dir", cfg.Legal.Dir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if contentPath != "" {
		c.Content.Path = contentPath
	}
	if legalDir != "" {
		c.Legal.Dir = legalDir
	}
	return c, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "storefront.yaml", "Config file")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Listing content file, JSON or YAML (overrides config)")
	rootCmd.PersistentFlags().StringVar(&legalDir, "legal-dir", "", "Directory holding privacy-policy and terms-of-service documents")

	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the content file when it changes")

	renderCmd.Flags().IntVar(&renderWidth, "width", 80, "Render width in columns")
	renderCmd.Flags().BoolVar(&renderExpanded, "expanded", false, "Show the full description")
	legalCmd.Flags().IntVar(&legalWidth, "width", 80, "Render width in columns")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(legalCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
