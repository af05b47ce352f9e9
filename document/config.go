package document

import "errors"

// DefaultLogLevel is the log level used when none is configured.
const DefaultLogLevel = "info"

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("document module name must not be empty")

// ErrEmptyPath is returned when no document file path is configured.
var ErrEmptyPath = errors.New("document path must not be empty")

// Config holds the configuration for a document module.
type Config struct {
	Path     string
	LogLevel string
	DMYDates bool
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrEmptyPath
	}

	return nil
}
