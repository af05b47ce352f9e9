package document

// Option defines a function type for configuring a document module.
type Option func(*Config)

// WithPath sets the document file path.
func WithPath(path string) Option {
	return func(cfg *Config) {
		cfg.Path = path
	}
}

// WithLogLevel sets the log level for the module's own logging.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithDMYDates enables the date getter on the supplied accessor, backed by
// the dmy day-month-year parser.
func WithDMYDates() Option {
	return func(cfg *Config) {
		cfg.DMYDates = true
	}
}
