// Package waterfall: sentinel errors and configuration options.
package waterfall

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for waterfall segmentation.
var (
	// ErrBadLevels indicates Run was invoked with fewer than one level.
	ErrBadLevels = errors.New("waterfall: levels must be >= 1")

	// ErrBridgeInCommit indicates the commit phase met a bridge edge whose
	// face carries a flood label. The input subdivision should not contain
	// bridges; the condition is reported, not repaired.
	ErrBridgeInCommit = errors.New("waterfall: bridge encountered in commit phase")
)

// Options configures Step and Run. Use DefaultOptions() as a starting point.
type Options struct {
	// Logger receives per-level merge counts at Info level. Nil means silent.
	Logger *logrus.Logger
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes progress reporting to the given logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the standard configuration: silent.
func DefaultOptions() Options {
	return Options{}
}
