package fieldpath

import "time"

// DateParser converts a date string into a time.Time. It is the contract of
// the optional date capability; see WithDateParser and the dmy package.
type DateParser func(string) (time.Time, error)

// Options holds configuration settings for an Accessor.
type Options struct {
	DateParser DateParser
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithDateParser enables the Date getter using the given parser.
// Without this option the date capability is not offered and Date panics.
func WithDateParser(parser DateParser) Option {
	return func(opts *Options) {
		opts.DateParser = parser
	}
}
