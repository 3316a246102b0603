// Package livewire: configuration options.
package livewire

import (
	"github.com/sirupsen/logrus"
)

// Options configures a LiveWire search. Use DefaultOptions() as a starting
// point.
type Options struct {
	// Logger receives expansion statistics at Debug level. Nil means silent.
	Logger *logrus.Logger
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes expansion reporting to the given logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the standard configuration: silent.
func DefaultOptions() Options {
	return Options{}
}
