package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // json, console
	File   string `yaml:"file" json:"file,omitempty"`     // path, or "stderr"
}

// ToStderr reports whether logs go to standard error instead of a file.
func (c *LoggingConfig) ToStderr() bool {
	return c.File == "" || c.File == "stderr"
}
