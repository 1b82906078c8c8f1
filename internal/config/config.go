package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all storefront configuration.
type Config struct {
	// Content source for the product page
	Content ContentConfig `yaml:"content"`

	// Legal documents
	Legal LegalConfig `yaml:"legal"`

	// Terminal presentation
	UI UIConfig `yaml:"ui"`

	// Share-to-clipboard
	Share ShareConfig `yaml:"share"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ContentConfig locates the page content file.
type ContentConfig struct {
	Path           string `yaml:"path"`
	Watch          bool   `yaml:"watch"`
	ReloadDebounce string `yaml:"reload_debounce"`
}

// LegalConfig locates and styles the legal documents.
type LegalConfig struct {
	Dir   string `yaml:"dir"`
	Style string `yaml:"style"` // auto, dark, light, notty, ascii
}

// ShareConfig configures the share action.
type ShareConfig struct {
	Backend        string `yaml:"backend"` // auto, system, osc52
	FeedbackWindow string `yaml:"feedback_window"`
}

// Defaults used when a duration fails to parse.
const (
	DefaultReloadDebounce = 250 * time.Millisecond
	DefaultFeedbackWindow = 2 * time.Second
	DefaultSettleDelay    = 100 * time.Millisecond
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{
			Path:           filepath.Join("content", "data.json"),
			Watch:          true,
			ReloadDebounce: "250ms",
		},

		Legal: LegalConfig{
			Dir:   "content",
			Style: "auto",
		},

		UI: *DefaultUIConfig(),

		Share: ShareConfig{
			Backend:        "auto",
			FeedbackWindow: "2s",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "storefront.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate rejects values the program cannot act on.
func (c *Config) Validate() error {
	if c.Content.Path == "" {
		return fmt.Errorf("content.path is required")
	}
	if !oneOf(c.Legal.Style, "auto", "dark", "light", "notty", "ascii") {
		return fmt.Errorf("legal.style %q: want auto, dark, light, notty or ascii", c.Legal.Style)
	}
	if !oneOf(c.Share.Backend, "auto", "system", "osc52") {
		return fmt.Errorf("share.backend %q: want auto, system or osc52", c.Share.Backend)
	}
	if err := c.UI.Validate(); err != nil {
		return err
	}
	if !oneOf(c.Logging.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("logging.level %q: want debug, info, warn or error", c.Logging.Level)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("STOREFRONT_CONTENT"); path != "" {
		c.Content.Path = path
	}
	if dir := os.Getenv("STOREFRONT_LEGAL_DIR"); dir != "" {
		c.Legal.Dir = dir
	}
	if theme := os.Getenv("STOREFRONT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if backend := os.Getenv("STOREFRONT_CLIPBOARD"); backend != "" {
		c.Share.Backend = backend
	}
	if level := os.Getenv("STOREFRONT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetReloadDebounce returns the content reload debounce as a duration.
func (c *Config) GetReloadDebounce() time.Duration {
	return parseDuration(c.Content.ReloadDebounce, DefaultReloadDebounce)
}

// GetFeedbackWindow returns how long the share acknowledgement stays visible.
func (c *Config) GetFeedbackWindow() time.Duration {
	return parseDuration(c.Share.FeedbackWindow, DefaultFeedbackWindow)
}

// GetSettleDelay returns the delay before the first overflow measurement.
func (c *Config) GetSettleDelay() time.Duration {
	return parseDuration(c.UI.SettleDelay, DefaultSettleDelay)
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
