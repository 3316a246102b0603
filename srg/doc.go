// Package srg implements seeded region growing on a planar subdivision.
//
// What:
//
//   - The caller flags any number of faces core.SRGSeed. Grow then absorbs
//     every reachable non-seed face into an adjacent seed region, cheapest
//     candidate first, merging topologically via the merge transaction and
//     promoting each survivor to a seed.
//   - The queue holds one entry per candidate face — the lowest known cost
//     of absorbing it into some adjacent seed region. The core.SRGBorder
//     flag prevents duplicate enqueuing.
//   - Flood is the non-mutating variant: it propagates integer region
//     labels instead of merging, and feeds the waterfall's flood phase.
//
// Policies:
//
//   - PolicyDynamic (default): a candidate's queue entry tracks the true
//     minimum over all its seed neighbors, via mutable-priority decreases.
//   - PolicyStatic: reproduces the Adams–Bischof paper literally — a face
//     adjacent to two seeds keeps whatever cost its first-processed
//     neighbor assigned. Faster but order-dependent; this is a documented
//     fidelity trade-off, not a defect, which is why both policies exist.
//
// Staleness: queue entries lag behind the topology. A popped face that has
// meanwhile been absorbed (it is a seed now, or gone) is discarded; the
// actual merge target is re-derived from the live map at pop time, never
// trusted from the queue.
//
// Errors:
//
//   - ErrNoSeeds: Grow or Flood invoked although no face was ever marked —
//     a caller error, reported rather than spun on.
package srg
