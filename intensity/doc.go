// Package intensity computes morphometric intensity indicators for
// spatial units (buildings, plots, street segments, street nodes) by
// aggregating values over the topological neighborhood graph instead of
// raw geometric distance.
//
// What:
//
//   - ElementsCount:    joined-record count per aggregation unit,
//     optionally weighted by the unit's area or length.
//   - Courtyards:       interior-ring count of each connected building
//     group, attached to every member of the group.
//   - BlocksCount:      distinct block ids in the closed 1-hop
//     neighborhood, divided by the neighborhood's summed area.
//   - Reached:          count/sum/mean/std of secondary records reachable
//     within one topological step on a street network.
//   - NodeDensity:      node count (or degree-weighted count) per unit of
//     incident street length in the closed 1-hop neighborhood.
//   - CoveredAreaRatio, FloorAreaRatio: covering area (or floor area)
//     joined on a shared id, over the covered unit's own area.
//
// Every operation returns an aggregate.Series aligned with the input
// unit order: one value per unit, always.
//
// Collaborators:
//
//   - adjacency.Graph supplies the neighborhood topology; it is built by
//     an external spatial-weights library and consumed read-only.
//   - Geometry exposes precomputed area/length/kind per unit; Dissolver
//     performs the buffered union behind courtyard detection. Both are
//     interfaces: the engine computes no geometric predicates itself.
//   - table.Table resolves secondary records by foreign key.
//
// Error policy:
//
// Structural problems (nil collaborator, mismatched lengths, malformed
// options) abort the call with a nil series. Per-unit and per-component
// failures never abort the batch: the owning units are left Undefined
// and the failures come back joined into the returned error, alongside
// the usable series. Callers distinguish the two by checking whether the
// series is nil.
//
// Concurrency:
//
// Per-unit work has no shared mutable state beyond the unit's own slot
// in the result series, so every operation accepts WithWorkers(n) to run
// the unit map on a bounded errgroup; the default path is synchronous.
// WithContext cancels between units.
package intensity
