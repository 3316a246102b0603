// Package srg: policies, sentinel errors and configuration options.
package srg

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for seeded region growing.
var (
	// ErrNoSeeds indicates growing was attempted with no seed faces marked.
	ErrNoSeeds = errors.New("srg: no seed faces marked")

	// ErrFaceNotFound indicates a seed label referenced a retired or
	// unknown face.
	ErrFaceNotFound = errors.New("srg: seed face not found")
)

// Policy selects how candidate costs are maintained while seeds spread.
type Policy int

const (
	// PolicyDynamic keeps every candidate's queued cost at the true
	// minimum over all adjacent seed regions.
	PolicyDynamic Policy = iota

	// PolicyStatic keeps the first assigned cost, as in the original
	// Adams–Bischof formulation; the outcome depends on processing order.
	PolicyStatic
)

// Options configures a Grower. Use DefaultOptions() as a starting point.
type Options struct {
	// Policy selects dynamic or static cost maintenance.
	Policy Policy

	// Logger receives the merge count at Info level and per-step detail at
	// Debug level. Nil means silent.
	Logger *logrus.Logger
}

// Option configures Options.
type Option func(*Options)

// WithPolicy selects the cost-maintenance policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithLogger routes progress reporting to the given logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the standard configuration: dynamic policy, silent.
func DefaultOptions() Options {
	return Options{Policy: PolicyDynamic}
}
