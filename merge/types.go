// Package merge: sentinel errors and configuration options.
package merge

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for merge operations.
var (
	// ErrProtected indicates a protection flag on a shared boundary edge
	// aborted the transaction. Expected refusal; nothing was mutated.
	ErrProtected = errors.New("merge: protected edge refused the transaction")

	// ErrIsBridge indicates FacesCompletely was called on a bridge dart,
	// whose two sides border the same face. Caller error.
	ErrIsBridge = errors.New("merge: dart belongs to a bridge")

	// ErrFaceNotFound indicates FacesByLabel referenced a retired or
	// unknown face label.
	ErrFaceNotFound = errors.New("merge: face not found")

	// ErrNotAdjacent indicates FacesByLabel found no common boundary edge.
	ErrNotAdjacent = errors.New("merge: faces share no boundary edge")

	// ErrExhausted indicates MergeStep was called on an empty queue.
	ErrExhausted = errors.New("merge: cost queue exhausted")

	// ErrNoCommonEdges indicates the transaction found zero shared edges
	// although the dart's faces differ — an invariant violation.
	ErrNoCommonEdges = errors.New("merge: no common edges found")
)

// Cruft bitmask values for RemoveCruft.
const (
	// CruftIsolatedNodes removes nodes of degree 0.
	CruftIsolatedNodes = 1

	// CruftDegree2Nodes fuses the edge pairs at nodes of degree 2.
	CruftDegree2Nodes = 2

	// CruftBridges removes bridge edges.
	CruftBridges = 4

	// CruftEdges merges faces across every removable non-bridge edge.
	CruftEdges = 8

	// CruftNodes combines both node cleanups (the RemoveCruft default).
	CruftNodes = CruftIsolatedNodes | CruftDegree2Nodes

	// CruftAll enables every sweep.
	CruftAll = CruftIsolatedNodes | CruftDegree2Nodes | CruftBridges | CruftEdges
)

// Options configures the merge transaction and the Merger.
// Use DefaultOptions() as a starting point.
type Options struct {
	// KeepDegree2Nodes disables the fusion of edge pairs at nodes whose
	// degree dropped to 2 during a transaction.
	KeepDegree2Nodes bool

	// CostLog enables recording the cost of every performed merge.
	CostLog bool

	// ConsistencyChecks makes RemoveCruft validate the map after every
	// single operation (slow; meant for tests).
	ConsistencyChecks bool

	// Logger receives operation counts at Info level and per-merge detail
	// at Debug level. Nil means silent.
	Logger *logrus.Logger
}

// Option configures Options.
type Option func(*Options)

// WithKeepDegree2Nodes keeps degree-2 nodes instead of fusing their edges.
func WithKeepDegree2Nodes() Option {
	return func(o *Options) { o.KeepDegree2Nodes = true }
}

// WithCostLog records the cost of every performed merge;
// retrieve the log via Merger.CostLog.
func WithCostLog() Option {
	return func(o *Options) { o.CostLog = true }
}

// WithConsistencyChecks validates the map after every RemoveCruft
// operation.
func WithConsistencyChecks() Option {
	return func(o *Options) { o.ConsistencyChecks = true }
}

// WithLogger routes progress reporting to the given logger.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the standard configuration: degree-2 nodes fused,
// no cost log, no consistency checks, silent.
func DefaultOptions() Options {
	return Options{}
}
