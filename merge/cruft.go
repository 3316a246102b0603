package merge

import (
	"errors"

	"github.com/eldruin/geomap/core"
)

// RemoveCruft sweeps the map for removable clutter. what is a bit
// combination of:
//
//	CruftIsolatedNodes (1) — remove degree-0 nodes
//	CruftDegree2Nodes  (2) — fuse the edge pairs at degree-2 nodes
//	CruftBridges       (4) — remove bridges
//	CruftEdges         (8) — merge faces across all removable edges
//
// Protected edges and self-loop anchors are skipped. Returns the number of
// operations performed. With WithConsistencyChecks the map is validated
// after every single operation and the first violation aborts the sweep.
func RemoveCruft(m *core.GeoMap, what int, opts ...Option) (int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	count := 0
	perform := func(err error) error {
		if err != nil {
			if isRefusal(err) {
				return nil
			}

			return err
		}
		count++
		if cfg.ConsistencyChecks {
			return m.CheckConsistency()
		}

		return nil
	}

	if what&CruftEdges != 0 {
		for _, e := range m.Edges() {
			if m.Edge(e.Label()) == nil || e.IsBridge() {
				continue
			}
			_, err := m.MergeFaces(e.Dart())
			if err = perform(err); err != nil {
				return count, err
			}
		}
	}

	if what&CruftBridges != 0 {
		for _, e := range m.Edges() {
			if m.Edge(e.Label()) == nil || !e.IsBridge() {
				continue
			}
			_, err := m.RemoveBridge(e.Dart())
			if err = perform(err); err != nil {
				return count, err
			}
		}
	}

	if what&CruftDegree2Nodes != 0 {
		for _, n := range m.Nodes() {
			if m.Node(n.Label()) == nil || n.Degree() != 2 {
				continue
			}
			anchor := n.Anchor()
			if anchor.EndNodeLabel() == n.Label() {
				continue
			}
			_, err := m.MergeEdges(anchor)
			if err = perform(err); err != nil {
				return count, err
			}
		}
	}

	if what&CruftIsolatedNodes != 0 {
		for _, n := range m.Nodes() {
			if m.Node(n.Label()) == nil || n.Degree() != 0 {
				continue
			}
			if err := perform(m.RemoveIsolatedNode(n.Label())); err != nil {
				return count, err
			}
		}
	}

	if cfg.Logger != nil {
		cfg.Logger.WithField("operations", count).Info("remove cruft")
	}

	return count, nil
}

// isRefusal classifies the expected Euler-operator objections that a sweep
// simply skips.
func isRefusal(err error) bool {
	for _, refusal := range []error{
		core.ErrProtected, core.ErrIsBridge, core.ErrNotBridge,
		core.ErrBadDegree, core.ErrIsLoop, core.ErrNotIsolated,
	} {
		if errors.Is(err, refusal) {
			return true
		}
	}

	return false
}
