// Package adjacency provides the immutable topological neighborhood graph
// underlying morphometric aggregation: a mapping from unit index to the set
// of directly adjacent unit indices, plus the two traversal primitives built
// on it: bounded neighborhood expansion and connected-component closure.
//
// What:
//
//   - Graph wraps per-unit neighbor sets over a fixed unit universe 0..N-1.
//   - Neighborhood(seed, includeSelf) expands a seed to its closed or open
//     1-hop neighborhood.
//   - Components() partitions the universe into maximal connected groups via
//     breadth-first frontier expansion; ComponentIDs() labels every unit.
//   - UnitSet is the set currency: a roaring-bitmap-backed set of unit
//     indices with cheap union, membership, and ordered iteration.
//
// Why:
//
//   - Building intensity indicators (reached counts, node density, courtyard
//     detection) requires aggregating over topological neighbors rather than
//     metric distance; the graph is the shared substrate for all of them.
//   - The graph is supplied by an external spatial-weights builder
//     (contiguity or k-nearest rules) and is never mutated here.
//
// Complexity:
//
//   - Neighborhood:  O(degree(seed)), Memory: O(degree(seed)).
//   - Components:    O(N + E),        Memory: O(N).
//
// Errors:
//
//   - ErrNilGraph:            a nil *Graph was passed to an operation.
//   - ErrBadUniverse:         universe size is negative.
//   - ErrNeighborOutOfRange:  a neighbor reference falls outside 0..N-1;
//     the upstream weights matrix is malformed and construction aborts.
//   - ErrUnitOutOfRange:      a query seed falls outside 0..N-1.
//
// The graph tolerates self-loops: the bitmap representation deduplicates
// them, so a unit listing itself as a neighbor is never counted twice.
package adjacency
