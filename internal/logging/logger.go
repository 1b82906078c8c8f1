// Package logging builds the zap logger used across storefront.
// Subsystems log through named children (one per Category) so output can be
// filtered by component. Interactive sessions log to a file to keep the
// terminal clean.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup and shutdown
	CategoryContent Category = "content" // Content loading and live reload
	CategoryUI      Category = "ui"      // Page routing and layout
	CategoryShare   Category = "share"   // Clipboard writes
	CategoryLegal   Category = "legal"   // Legal document loading/rendering
)

// New builds a logger from configuration. verbose forces debug level.
// Every logger carries a session id so a run can be traced in a shared file.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch strings.ToLower(orDefault(cfg.Format, "json")) {
	case "json":
		zcfg.Encoding = "json"
	case "console", "text":
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	if cfg.ToStderr() {
		zcfg.OutputPaths = []string{"stderr"}
	} else {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		zcfg.OutputPaths = []string{cfg.File}
	}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}

// For returns the child logger for a category. A nil parent yields a no-op
// logger so components can be built without logging in tests.
func For(l *zap.Logger, category Category) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(string(category))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
